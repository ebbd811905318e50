// Package node provides the binary tree cell shared by the balanced search
// tree and the Huffman tree.
//
// A Node spends its life in at most two phases.  While it sits in a search
// tree only Balance is meaningful; once it has been handed to a Huffman tree
// only Span is.  The two fields are kept apart so that neither phase ever
// reads a value written by the other.
//
package node

import (
	"bytes"
	"fmt"
	"strconv"
)

// Record is the symbol record carried by every Node.
type Record struct {
	// Sequence holds the symbol's bytes.  It is owned by the Node and is nil
	// for internal Huffman nodes.
	Sequence []byte

	// Count holds the number of occurrences of Sequence, or the summed
	// weight of both subtrees for an internal Huffman node.
	Count uint64
}

// Node is a binary tree cell.  Each Node exclusively owns its children.
type Node[V any] struct {
	Record

	// Value is an optional payload attached to the key.
	Value V

	// Balance is height(Left) - height(Right).  Search-tree phase only.
	Balance int

	// Span is 0 for a leaf and Left.Span + Right.Span + 2 for a merged
	// node.  Huffman phase only; it bounds the length of any code in the
	// subtree and has no other meaning.
	Span int

	Left  *Node[V]
	Right *Node[V]
}

// New returns a leaf owning a copy of seq, with a count of 1.
func New[V any](seq []byte) *Node[V] {
	return &Node[V]{Record: Record{Sequence: clone(seq), Count: 1}}
}

// Merge returns an internal Huffman node whose children are left and right.
func Merge[V any](left, right *Node[V]) *Node[V] {
	return &Node[V]{
		Record: Record{Count: left.Count + right.Count},
		Span:   left.Span + right.Span + 2,
		Left:   left,
		Right:  right,
	}
}

// IsLeaf reports whether n has no children.
func (n *Node[V]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Clone returns a detached copy of n: the record and payload are copied, the
// children are not, and both phase fields start at zero.
func (n *Node[V]) Clone() *Node[V] {
	if n == nil {
		return nil
	}
	return &Node[V]{
		Record: Record{Sequence: clone(n.Sequence), Count: n.Count},
		Value:  n.Value,
	}
}

// Copy returns a copy of n that owns a fresh copy of the sequence and takes
// over n's children and Span.
func (n *Node[V]) Copy() *Node[V] {
	if n == nil {
		return nil
	}
	c := *n
	c.Sequence = clone(n.Sequence)
	return &c
}

// Release drops everything n owns except its children.
func (n *Node[V]) Release() {
	var zero V
	n.Sequence = nil
	n.Count = 0
	n.Value = zero
	n.Balance = 0
	n.Span = 0
	n.Left = nil
	n.Right = nil
}

// Destroy releases n and its whole subtree, children before parents.
func Destroy[V any](n *Node[V]) {
	if n == nil {
		return
	}
	Destroy(n.Left)
	Destroy(n.Right)
	n.Release()
}

// String returns a short description of the node's record.
func (n *Node[V]) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Sequence == nil {
		return "(internal " + strconv.FormatUint(n.Count, 10) + ")"
	}
	return fmt.Sprintf("%q x%d", n.Sequence, n.Count)
}

var _ fmt.Stringer = (*Node[struct{}])(nil)

// Compare orders byte sequences lexicographically; on a common prefix the
// shorter sequence is the smaller one.
func Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// CompareWeights orders nodes by ascending Count.
func CompareWeights[V any](a, b *Node[V]) int {
	switch {
	case a.Count < b.Count:
		return -1
	case a.Count > b.Count:
		return 1
	default:
		return 0
	}
}

func clone(seq []byte) []byte {
	if seq == nil {
		return nil
	}
	out := make([]byte, len(seq))
	copy(out, seq)
	return out
}
