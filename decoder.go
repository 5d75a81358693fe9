package huffman

import (
	"fmt"
	"strings"
)

// DecodeFromCodes decodes a bit string produced with the given code table.
// The code tree is rebuilt from the table by RestoreTree.
func DecodeFromCodes(bits string, codes CodeTable) ([]Symbol, error) {
	root, err := RestoreTree(codes)
	if err != nil {
		return nil, err
	}
	return DecodeFromTree(bits, root)
}

// DecodeFromTree decodes a bit string by walking the code tree rooted at
// root: '0' steps left, '1' steps right, and reaching a leaf emits its
// Symbol and returns to the root.
//
// The tree is only read, so one tree may decode any number of bit strings,
// concurrently if desired.
//
// Errors:
//
//     ErrInvalidArgument        root is nil, or bits contains a character
//                               other than '0' or '1'
//
//     ErrInconsistentCodeTable  bits follows a branch the tree lacks
//
//     ErrTruncatedInput         bits ends in the middle of a code
//
func DecodeFromTree(bits string, root *Node) ([]Symbol, error) {
	if root == nil {
		return nil, fmt.Errorf("cannot decode without a Huffman tree: %w", ErrInvalidArgument)
	}
	if i := invalidBitIndex(bits); i >= 0 {
		return nil, fmt.Errorf("invalid bit %q at offset %d of encoded input: %w", bits[i], i, ErrInvalidArgument)
	}

	// A lone leaf is the tree of a single symbol, whose code is "0".
	if root.IsLeaf() {
		if i := strings.IndexByte(bits, '1'); i >= 0 {
			return nil, fmt.Errorf("no code %s in single-symbol Huffman tree at offset %d: %w", Code(bits[i:i+1]), i, ErrInconsistentCodeTable)
		}
		out := make([]Symbol, len(bits))
		for i := range out {
			out[i] = root.Value
		}
		return out, nil
	}

	out := make([]Symbol, 0, len(bits))
	node := root
	start := 0
	for i := 0; i < len(bits); i++ {
		node = node.Child(bits[i])
		if node == nil {
			return nil, fmt.Errorf("no code %s in Huffman tree: %w", Code(bits[start:i+1]), ErrInconsistentCodeTable)
		}
		if node.IsLeaf() {
			out = append(out, node.Value)
			node = root
			start = i + 1
		}
	}
	if node != root {
		return nil, fmt.Errorf("encoded input ends inside code prefix %s at offset %d: %w", Code(bits[start:]), start, ErrTruncatedInput)
	}
	return out, nil
}

// DecodeStringFromCodes is like DecodeFromCodes, but returns the symbols as
// the runes of a string.
func DecodeStringFromCodes(bits string, codes CodeTable) (string, error) {
	symbols, err := DecodeFromCodes(bits, codes)
	if err != nil {
		return "", err
	}
	return SymbolsToString(symbols), nil
}

// DecodeStringFromTree is like DecodeFromTree, but returns the symbols as
// the runes of a string.
func DecodeStringFromTree(bits string, root *Node) (string, error) {
	symbols, err := DecodeFromTree(bits, root)
	if err != nil {
		return "", err
	}
	return SymbolsToString(symbols), nil
}
