package huffman

import (
	"sort"
)

// Symbol represents a symbol in an arbitrary alphabet.  Symbols produced by
// EncodeString are the runes of the input.
type Symbol int32

// InvalidSymbol is the Value of branch nodes, which encode no symbol.
const InvalidSymbol = Symbol(-1)

// KeyFunc maps a Symbol to the secondary key used to order leaves whose
// frequencies are equal.  Lower keys are merged first.
type KeyFunc func(Symbol) int64

// SymbolKey is the default KeyFunc: symbols are ordered by their own value.
func SymbolKey(symbol Symbol) int64 {
	return int64(symbol)
}

// Frequencies maps each Symbol to its number of occurrences.
type Frequencies map[Symbol]uint64

// CountFrequencies tallies the symbols of input in a single pass.
func CountFrequencies(input []Symbol) Frequencies {
	freq := make(Frequencies)
	for _, symbol := range input {
		freq[symbol]++
	}
	return freq
}

// Symbols returns the symbols of freq in ascending order.
func (freq Frequencies) Symbols() []Symbol {
	return sortedSymbols(freq)
}

func sortedSymbols[V any](m map[Symbol]V) []Symbol {
	out := make(bySymbol, 0, len(m))
	for symbol := range m {
		out = append(out, symbol)
	}
	out.Sort()
	return out
}

// StringToSymbols converts each rune of str into a Symbol.  Invalid UTF-8
// bytes become utf8.RuneError.
func StringToSymbols(str string) []Symbol {
	out := make([]Symbol, 0, len(str))
	for _, ch := range str {
		out = append(out, Symbol(ch))
	}
	return out
}

// SymbolsToString is the inverse of StringToSymbols.
func SymbolsToString(symbols []Symbol) string {
	out := make([]rune, len(symbols))
	for i, symbol := range symbols {
		out[i] = rune(symbol)
	}
	return string(out)
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
