package huffman

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
)

// Coder builds Huffman codes and encodes symbol sequences with them.  The
// zero value is ready to use.
type Coder struct {
	// Key breaks ties between symbols of equal frequency.  If nil,
	// SymbolKey is used.
	Key KeyFunc
}

// BuildCodes builds the code tree for freq and reads its code table.  The
// tree may be kept for DecodeFromTree.
func (c Coder) BuildCodes(freq Frequencies) (*Node, CodeTable, error) {
	root, err := BuildTree(freq, c.Key)
	if err != nil {
		return nil, nil, err
	}
	codes, err := StoreCodes(root)
	if err != nil {
		return nil, nil, err
	}
	return root, codes, nil
}

// Encode encodes input into a bit string, using a code built from the
// symbol frequencies of input itself.  It returns the bit string together
// with the code table needed to decode it.
//
// An empty input has no frequencies to build a code from, and is rejected
// with an error wrapping ErrInvalidArgument.
//
func (c Coder) Encode(input []Symbol) (string, CodeTable, error) {
	freq := CountFrequencies(input)
	_, codes, err := c.BuildCodes(freq)
	if err != nil {
		return "", nil, err
	}

	var size int
	for symbol, count := range freq {
		size += codes[symbol].Size() * int(count)
	}

	var sb strings.Builder
	sb.Grow(size)
	for _, symbol := range input {
		hc, found := codes[symbol]
		assert.Assertf(found, "symbol %d missing from its own code table", symbol)
		sb.WriteString(string(hc))
	}
	return sb.String(), codes, nil
}

// EncodeString is like Encode, but treats each rune of str as a Symbol.
// str must be valid UTF-8, or else an error wrapping ErrInvalidArgument is
// returned.
func (c Coder) EncodeString(str string) (string, CodeTable, error) {
	if !utf8.ValidString(str) {
		return "", nil, fmt.Errorf("input is not valid UTF-8: %w", ErrInvalidArgument)
	}
	return c.Encode(StringToSymbols(str))
}

// Encode is shorthand for Coder{}.Encode.
func Encode(input []Symbol) (string, CodeTable, error) {
	return Coder{}.Encode(input)
}

// EncodeString is shorthand for Coder{}.EncodeString.
func EncodeString(str string) (string, CodeTable, error) {
	return Coder{}.EncodeString(str)
}
