package huffman

import (
	"errors"
	"reflect"
	"testing"
)

func makeTestTree() *Node {
	root, err := BuildTree(abacabFrequencies(), nil)
	if err != nil {
		panic(err)
	}
	return root
}

func TestDecodeFromCodes(t *testing.T) {
	codes := CodeTable{'a': "0", 'b': "10", 'c': "11"}
	output, err := DecodeStringFromCodes("010011010", codes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expect := "abacab"; output != expect {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, output)
	}
}

func TestDecodeFromTree(t *testing.T) {
	root := makeTestTree()

	type testRow struct {
		bits   string
		expect string
	}

	testData := [...]testRow{
		{bits: "", expect: ""},
		{bits: "0", expect: "a"},
		{bits: "10", expect: "b"},
		{bits: "11", expect: "c"},
		{bits: "010011010", expect: "abacab"},
		{bits: "111111", expect: "ccc"},
	}

	// The same tree serves every row.
	for _, row := range testData {
		t.Run(Code(row.bits).String(), func(t *testing.T) {
			output, err := DecodeStringFromTree(row.bits, root)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output != row.expect {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, output)
			}
		})
	}
}

func TestDecodeFromTree_Errors(t *testing.T) {
	root := makeTestTree()

	type testRow struct {
		name   string
		bits   string
		root   *Node
		expect error
	}

	testData := [...]testRow{
		{"nil-tree", "0", nil, ErrInvalidArgument},
		{"non-binary", "01x0", root, ErrInvalidArgument},
		{"space", "0 1", root, ErrInvalidArgument},
		{"truncated", "01", root, ErrTruncatedInput},
		{"truncated-long", "0100110101", root, ErrTruncatedInput},
		{"missing-branch", "01", NewBranch(NewLeaf('a'), nil), ErrInconsistentCodeTable},
		{"lone-leaf", "001", NewLeaf('a'), ErrInconsistentCodeTable},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			output, err := DecodeFromTree(row.bits, row.root)
			if !errors.Is(err, row.expect) {
				t.Errorf("expected %v, got %v", row.expect, err)
			}
			if output != nil {
				t.Errorf("expected no output, got %v", output)
			}
		})
	}
}

func TestDecodeFromTree_LoneLeaf(t *testing.T) {
	root, err := BuildTree(Frequencies{'x': 3}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	type testRow struct {
		bits   string
		expect string
	}

	testData := [...]testRow{
		{bits: "", expect: ""},
		{bits: "0", expect: "x"},
		{bits: "000", expect: "xxx"},
	}
	for _, row := range testData {
		t.Run(Code(row.bits).String(), func(t *testing.T) {
			output, err := DecodeStringFromTree(row.bits, root)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output != row.expect {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, output)
			}
		})
	}
}

func TestDecodeFromCodes_Errors(t *testing.T) {
	type testRow struct {
		name   string
		bits   string
		codes  CodeTable
		expect error
	}

	testData := [...]testRow{
		{"empty-table", "0", CodeTable{}, ErrInvalidArgument},
		{"not-prefix-free", "0", CodeTable{'a': "0", 'b': "00"}, ErrInconsistentCodeTable},
		{"truncated", "1", CodeTable{'a': "0", 'b': "10", 'c': "11"}, ErrTruncatedInput},
		{"unknown-code", "1", CodeTable{'a': "0"}, ErrInconsistentCodeTable},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			if _, err := DecodeFromCodes(row.bits, row.codes); !errors.Is(err, row.expect) {
				t.Errorf("expected %v, got %v", row.expect, err)
			}
		})
	}
}

func TestDecode_RestoredTreeEquivalence(t *testing.T) {
	input := "the quick brown fox jumps over the lazy dog"
	root, codes, err := Coder{}.BuildCodes(CountFrequencies(StringToSymbols(input)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	restored, err := RestoreTree(codes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, text := range []string{input, "dog", "god", "zyx wvu", " "} {
		var bits string
		for _, symbol := range StringToSymbols(text) {
			bits += string(codes[symbol])
		}

		fromTree, err := DecodeFromTree(bits, root)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", text, err)
		}
		fromRestored, err := DecodeFromTree(bits, restored)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", text, err)
		}
		fromCodes, err := DecodeFromCodes(bits, codes)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", text, err)
		}
		if !reflect.DeepEqual(fromTree, fromRestored) || !reflect.DeepEqual(fromTree, fromCodes) {
			t.Errorf("%q: decoders disagree:\n\ttree:     %v\n\trestored: %v\n\tcodes:    %v", text, fromTree, fromRestored, fromCodes)
		}
		if output := SymbolsToString(fromTree); output != text {
			t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", text, output)
		}
	}
}
