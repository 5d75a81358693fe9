package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman code tree.  A leaf has no children and holds
// the Symbol its path encodes.  Every other node is an internal branch point
// whose Value is InvalidSymbol.  Each node exclusively owns its children.
type Node struct {
	Value Symbol
	Left  *Node
	Right *Node
}

// NewLeaf constructs a leaf holding symbol.
func NewLeaf(symbol Symbol) *Node {
	return &Node{Value: symbol}
}

// NewBranch constructs an internal node with the given children.
func NewBranch(left, right *Node) *Node {
	return &Node{Value: InvalidSymbol, Left: left, Right: right}
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Child returns the child reached by following bit, which must be '0' (left)
// or '1' (right).  Any other bit panics.
func (n *Node) Child(bit byte) *Node {
	return *n.childSlot(bit)
}

func (n *Node) childSlot(bit byte) **Node {
	assert.Assertf(bit == '0' || bit == '1', "bit %q is neither '0' nor '1'", bit)
	if bit == '0' {
		return &n.Left
	}
	return &n.Right
}

// Dump writes a programmer-readable debugging dump of the tree rooted at this
// node to the given writer, one line per node in depth-first order.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Node{\n")
	walkTree(n, func(path Code, node *Node) {
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "\t%s = %q\n", path, rune(node.Value))
		} else {
			fmt.Fprintf(&buf, "\t%s = branch\n", path)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walkTree visits every node under root in depth-first order, left before
// right, passing each node's path from the root.  It uses an explicit stack,
// so the depth of the tree is bounded only by memory.
func walkTree(root *Node, visit func(path Code, node *Node)) {
	if root == nil {
		return
	}

	type stackItem struct {
		path Code
		node *Node
	}

	stack := make([]stackItem, 0, 16)
	stack = append(stack, stackItem{"", root})
	for len(stack) != 0 {
		last := len(stack) - 1
		top := stack[last]
		stack[last] = stackItem{}
		stack = stack[:last]

		visit(top.path, top.node)

		// Push right first so that left is visited first.
		if top.node.Right != nil {
			stack = append(stack, stackItem{top.path + "1", top.node.Right})
		}
		if top.node.Left != nil {
			stack = append(stack, stackItem{top.path + "0", top.node.Left})
		}
	}
}
