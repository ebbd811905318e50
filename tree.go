package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"

	"github.com/fusedbloxxer/huffman-compression/minheap"
	"github.com/fusedbloxxer/huffman-compression/node"
)

// Mode selects how nodes move from a frequency table into the heap.
type Mode = minheap.Mode

const (
	// Weak moves the table's own nodes into the heap, consuming the table.
	Weak = minheap.Weak

	// Deep copies every node into the heap, leaving the table intact.
	Deep = minheap.Deep
)

// Option configures tree and code table construction.
type Option func(*options)

type options struct {
	buckets int
	mode    Mode
}

// WithBuckets sets the bucket count of the frequency and code tables.
func WithBuckets(n int) Option {
	return func(o *options) { o.buckets = n }
}

// WithMode sets the ownership mode used to collect the frequency table.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

func makeOptions(opts []Option) options {
	o := options{buckets: DefaultBuckets, mode: Weak}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Collect moves every node of table into a new heap ordered by weight.
//
// In Weak mode the nodes themselves are detached from their buckets and
// pushed; the table is left destroyed.  In Deep mode the heap stores private
// copies and the table is not modified.
//
func Collect(table *FrequencyTable, mode Mode) (*minheap.Heap[*Node], error) {
	if table == nil {
		return nil, ErrEmptyInput
	}

	switch mode {
	case Weak:
		h := minheap.New(minheap.Borrow[*Node](), node.CompareWeights[struct{}])
		for _, root := range table.Detach() {
			if err := transfer(h, root); err != nil {
				h.Destroy()
				return nil, err
			}
		}
		table.Destroy()
		return h, nil

	case Deep:
		h := minheap.New(minheap.Own((*Node).Copy, node.Destroy[struct{}]), node.CompareWeights[struct{}])
		var err error
		table.Walk(func(_ int, n *Node) bool {
			err = h.Push(&Node{Record: n.Record})
			return err == nil
		})
		if err != nil {
			h.Destroy()
			return nil, err
		}
		return h, nil

	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
}

// transfer pushes the subtree rooted at n, children first, unlinking each
// node from its parent before it goes in.
func transfer(h *minheap.Heap[*Node], n *Node) error {
	if n == nil {
		return nil
	}
	left, right := n.Left, n.Right
	n.Left, n.Right = nil, nil
	n.Balance = 0
	if err := transfer(h, left); err != nil {
		return err
	}
	if err := transfer(h, right); err != nil {
		return err
	}
	return h.Push(n)
}

// Reduce merges the two lightest nodes of h until one remains and returns
// it.  The first node popped becomes the left child.  The heap is empty
// afterward.
func Reduce(h *minheap.Heap[*Node]) (*Node, error) {
	if h.Len() == 0 {
		return nil, ErrEmptyInput
	}

	for h.Len() > 1 {
		first, err := h.Pop()
		if err != nil {
			return nil, err
		}
		second, err := h.Pop()
		if err != nil {
			return nil, err
		}
		if err := h.Push(node.Merge(first, second)); err != nil {
			return nil, err
		}
	}

	root, err := h.Pop()
	if err != nil {
		return nil, err
	}
	assert.Assertf(h.Len() == 0, "heap not drained: %d left", h.Len())
	h.Destroy()

	// count the root itself
	root.Span++
	return root, nil
}

// TreeFromTable builds a Huffman tree from a populated frequency table.
// In Weak mode the table is consumed.
func TreeFromTable(table *FrequencyTable, mode Mode) (*Node, error) {
	h, err := Collect(table, mode)
	if err != nil {
		return nil, err
	}
	root, err := Reduce(h)
	if err != nil {
		h.Destroy()
		return nil, err
	}
	if root.IsLeaf() {
		node.Destroy(root)
		return nil, ErrSingleSymbol
	}
	return root, nil
}

// BuildTree counts the symbols that parse finds in data and builds their
// Huffman tree.
func BuildTree(data []byte, specifier int, parse Parser, opts ...Option) (*Node, error) {
	o := makeOptions(opts)
	table, err := NewFrequencyTable(data, specifier, o.buckets, parse)
	if err != nil {
		return nil, err
	}
	root, err := TreeFromTable(table, o.mode)
	if o.mode != Weak {
		table.Destroy()
	}
	if err != nil {
		return nil, err
	}
	return root, nil
}

// Leaves calls fn for every leaf of the tree rooted at n, left to right,
// with the leaf's depth.
func Leaves(n *Node, fn func(leaf *Node, depth int)) {
	leaves(n, 0, fn)
}

func leaves(n *Node, depth int, fn func(*Node, int)) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		fn(n, depth)
		return
	}
	leaves(n.Left, depth+1, fn)
	leaves(n.Right, depth+1, fn)
}
