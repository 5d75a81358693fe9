package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, written as a string of '0' and '1'
// characters.  The first character is the first bit, i.e. the branch taken
// at the root of the code tree.
type Code string

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// Validate returns an error wrapping ErrInvalidArgument if this Code
// contains any character other than '0' or '1'.
func (hc Code) Validate() error {
	if i := invalidBitIndex(string(hc)); i >= 0 {
		return fmt.Errorf("invalid bit %q at offset %d of code %s: %w", hc[i], i, hc, ErrInvalidArgument)
	}
	return nil
}

// IsPrefixOf returns true iff this Code is a proper or improper prefix of
// other.
func (hc Code) IsPrefixOf(other Code) bool {
	return strings.HasPrefix(string(other), string(hc))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// invalidBitIndex returns the index of the first character of bits that is
// neither '0' nor '1', or -1 if there is none.
func invalidBitIndex(bits string) int {
	for i := 0; i < len(bits); i++ {
		if ch := bits[i]; ch != '0' && ch != '1' {
			return i
		}
	}
	return -1
}

// CodeTable maps each Symbol to its Code.
type CodeTable map[Symbol]Code

// Validate checks that every Code is a non-empty bit string and that no
// Code is a prefix of another.
func (table CodeTable) Validate() error {
	if len(table) == 0 {
		return fmt.Errorf("empty code table: %w", ErrInvalidArgument)
	}

	symbols := sortedSymbols(table)
	for _, symbol := range symbols {
		hc := table[symbol]
		if hc.Size() == 0 {
			return fmt.Errorf("empty code for symbol %d: %w", symbol, ErrInvalidArgument)
		}
		if err := hc.Validate(); err != nil {
			return err
		}
	}

	// After sorting by bit string, any prefix sorts immediately before a
	// code it is the prefix of.
	codes := make(byCode, 0, len(table))
	for _, symbol := range symbols {
		codes = append(codes, table[symbol])
	}
	codes.Sort()
	for i := 1; i < len(codes); i++ {
		if codes[i-1].IsPrefixOf(codes[i]) {
			return fmt.Errorf("code %s is a prefix of code %s: %w", codes[i-1], codes[i], ErrInconsistentCodeTable)
		}
	}
	return nil
}

// MinSize is the bit length of the shortest Code in the table.
func (table CodeTable) MinSize() int {
	first := true
	var minSize int
	for _, hc := range table {
		if first || hc.Size() < minSize {
			minSize = hc.Size()
			first = false
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest Code in the table.
func (table CodeTable) MaxSize() int {
	var maxSize int
	for _, hc := range table {
		if hc.Size() > maxSize {
			maxSize = hc.Size()
		}
	}
	return maxSize
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.  Symbols are listed in ascending order.
func (table CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", table.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", table.MaxSize())
	for _, symbol := range sortedSymbols(table) {
		fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", rune(symbol), table[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = byCode(nil)

// }}}
