package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// BuildTree constructs a Huffman code tree for the given symbol frequencies.
// The key function breaks ties between leaves of equal frequency; if it is
// nil, SymbolKey is used.
//
// The result is fully determined by freq and key.  At equal frequency a
// merged subtree ranks before a leaf, an earlier merge ranks before a later
// one, and a leaf with a lower key ranks before one with a higher key.
//
// A single symbol yields a tree that is just its leaf.  StoreCodes gives
// such a leaf the code "0", so every occurrence still costs one bit.
//
func BuildTree(freq Frequencies, key KeyFunc) (*Node, error) {
	if len(freq) == 0 {
		return nil, fmt.Errorf("cannot build Huffman tree from an empty frequency map: %w", ErrInvalidArgument)
	}
	if key == nil {
		key = SymbolKey
	}

	// Step 1: one leaf per symbol.  Symbols are pushed in ascending order
	// so the heap layout does not depend on map iteration order.

	pq := NewPriorityQueue[buildItem](compareBuildItems)
	for _, symbol := range freq.Symbols() {
		mustPush(pq, &Entry[buildItem]{
			Payload:  buildItem{node: NewLeaf(symbol), key: key(symbol)},
			Priority: freq[symbol],
		})
	}

	// Step 2: pop two, merge them, and push the merged node back.  The
	// first pop becomes the right child and the second the left child.
	// Merged nodes are keyed by their merge sequence number.

	var nextSeq int64
	for pq.Len() > 1 {
		a := mustPop(pq)
		b := mustPop(pq)

		node := NewBranch(b.Payload.node, a.Payload.node)
		mustPush(pq, &Entry[buildItem]{
			Payload:  buildItem{node: node, key: nextSeq},
			Priority: saturatingAdd(a.Priority, b.Priority),
		})
		nextSeq++
	}

	return mustPop(pq).Payload.node, nil
}

// StoreCodes reads the code table off a code tree: the Code of each leaf is
// its path from root, '0' for every left branch and '1' for every right one.
// A tree that is a lone leaf has no paths, and its symbol gets the code "0".
func StoreCodes(root *Node) (CodeTable, error) {
	if root == nil {
		return nil, fmt.Errorf("cannot read codes without a Huffman tree: %w", ErrInvalidArgument)
	}
	if root.IsLeaf() {
		return CodeTable{root.Value: "0"}, nil
	}

	codes := make(CodeTable)
	walkTree(root, func(path Code, node *Node) {
		if node.IsLeaf() {
			codes[node.Value] = path
		}
	})
	return codes, nil
}

// RestoreTree rebuilds a code tree from a code table alone.  Each Code is
// inserted as a path from the root, creating branch nodes as needed and a
// leaf at its end.
//
// Codes must be non-empty strings of '0' and '1', or else an error wrapping
// ErrInvalidArgument is returned.  If one Code is a prefix of another, an
// error wrapping ErrInconsistentCodeTable is returned.
//
func RestoreTree(codes CodeTable) (*Node, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("cannot restore Huffman tree from an empty code table: %w", ErrInvalidArgument)
	}

	root := NewBranch(nil, nil)
	for _, symbol := range sortedSymbols(codes) {
		hc := codes[symbol]
		if hc.Size() == 0 {
			return nil, fmt.Errorf("empty code for symbol %d: %w", symbol, ErrInvalidArgument)
		}
		if err := hc.Validate(); err != nil {
			return nil, fmt.Errorf("symbol %d: %w", symbol, err)
		}

		node := root
		last := hc.Size() - 1
		for i := 0; i < last; i++ {
			slot := node.childSlot(hc[i])
			if *slot == nil {
				*slot = NewBranch(nil, nil)
			} else if (*slot).IsLeaf() {
				return nil, fmt.Errorf("code %s of symbol %d passes through the leaf of symbol %d: %w", hc, symbol, (*slot).Value, ErrInconsistentCodeTable)
			}
			node = *slot
		}

		slot := node.childSlot(hc[last])
		if *slot != nil {
			return nil, fmt.Errorf("code %s of symbol %d is already in use: %w", hc, symbol, ErrInconsistentCodeTable)
		}
		*slot = NewLeaf(symbol)
	}
	return root, nil
}

// type buildItem {{{

type buildItem struct {
	node *Node
	key  int64
}

func compareBuildItems(a, b *Entry[buildItem]) int {
	if cmp := ByPriority(a, b); cmp != 0 {
		return cmp
	}
	aLeaf, bLeaf := a.Payload.node.IsLeaf(), b.Payload.node.IsLeaf()
	if aLeaf != bLeaf {
		if aLeaf {
			return 1
		}
		return -1
	}
	if cmp := compareInt64(a.Payload.key, b.Payload.key); cmp != 0 {
		return cmp
	}
	return compareInt64(int64(a.Payload.node.Value), int64(b.Payload.node.Value))
}

var _ Comparator[buildItem] = compareBuildItems

func mustPush(pq *PriorityQueue[buildItem], entry *Entry[buildItem]) {
	err := pq.Push(entry)
	assert.Assertf(err == nil, "unexpected priority queue failure while building Huffman tree: %v", err)
}

func mustPop(pq *PriorityQueue[buildItem]) *Entry[buildItem] {
	entry, err := pq.Pop()
	assert.Assertf(err == nil, "unexpected priority queue failure while building Huffman tree: %v", err)
	return entry
}

// }}}
