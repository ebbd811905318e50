// Package avltree implements an AVL-balanced binary search tree keyed by
// byte sequences.
package avltree

import (
	"errors"

	"github.com/chronos-tachyon/assert"

	"github.com/fusedbloxxer/huffman-compression/node"
)

var (
	// ErrNilTree is returned when a method is called on a nil *Tree.
	ErrNilTree = errors.New("avltree: nil tree")

	// ErrNilKey is returned for a nil or zero-length key.
	ErrNilKey = errors.New("avltree: nil or empty key")
)

// Tree is an ordered collection of Nodes.  Keys are compared with
// node.Compare.
type Tree[V any] struct {
	root  *node.Node[V]
	total int
	size  int
}

// New returns an empty Tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{}
}

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[V]) Root() *node.Node[V] {
	if t == nil {
		return nil
	}
	return t.root
}

// Total is the number of Insert calls that succeeded, duplicates included.
func (t *Tree[V]) Total() int {
	if t == nil {
		return 0
	}
	return t.total
}

// Len is the number of distinct keys.
func (t *Tree[V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Find returns the node holding key, or nil.
func (t *Tree[V]) Find(key []byte) *node.Node[V] {
	if t == nil || key == nil {
		return nil
	}
	return find(t.root, key)
}

func find[V any](n *node.Node[V], key []byte) *node.Node[V] {
	if n == nil {
		return nil
	}
	cmp := node.Compare(key, n.Sequence)
	switch {
	case cmp == 0:
		return n
	case cmp < 0:
		return find(n.Left, key)
	default:
		return find(n.Right, key)
	}
}

// Insert adds key to the tree.  If key is already present its count is
// incremented and the tree keeps its shape; otherwise a new leaf owning a
// copy of key is linked in and the tree is rebalanced.  The returned bool
// reports whether a new node was created.
//
func (t *Tree[V]) Insert(key []byte) (*node.Node[V], bool, error) {
	if t == nil {
		return nil, false, ErrNilTree
	}
	if len(key) == 0 {
		return nil, false, ErrNilKey
	}

	var hit *node.Node[V]
	var created bool
	t.root, _ = insert(t.root, key, &hit, &created)
	t.total++
	if created {
		t.size++
	}
	return hit, created, nil
}

// insert returns the new subtree root and whether the subtree grew taller.
func insert[V any](n *node.Node[V], key []byte, hit **node.Node[V], created *bool) (*node.Node[V], bool) {
	if n == nil {
		leaf := node.New[V](key)
		*hit = leaf
		*created = true
		return leaf, true
	}

	cmp := node.Compare(key, n.Sequence)
	if cmp == 0 {
		n.Count++
		*hit = n
		return n, false
	}

	var grew bool
	if cmp < 0 {
		n.Left, grew = insert(n.Left, key, hit, created)
		if !grew {
			return n, false
		}
		n.Balance++
	} else {
		n.Right, grew = insert(n.Right, key, hit, created)
		if !grew {
			return n, false
		}
		n.Balance--
	}

	switch n.Balance {
	case 0:
		return n, false
	case 1, -1:
		return n, true
	default:
		return rebalance(n), false
	}
}

// rebalance restores |Balance| <= 1 at n after an insertion left it at ±2.
func rebalance[V any](n *node.Node[V]) *node.Node[V] {
	assert.Assertf(n.Balance == 2 || n.Balance == -2, "rebalance called with balance %d", n.Balance)

	if n.Balance > 0 {
		if sign(n.Left.Balance) != sign(n.Balance) {
			n.Left = rotateLeft(n.Left)
		}
		return rotateRight(n)
	}
	if sign(n.Right.Balance) != sign(n.Balance) {
		n.Right = rotateRight(n.Right)
	}
	return rotateLeft(n)
}

// rotateRight lifts n.Left above n.
func rotateRight[V any](n *node.Node[V]) *node.Node[V] {
	pivot := n.Left
	n.Left = pivot.Right
	pivot.Right = n

	n.Balance -= 1 + max(pivot.Balance, 0)
	pivot.Balance -= 1 - min(n.Balance, 0)
	return pivot
}

// rotateLeft lifts n.Right above n.
func rotateLeft[V any](n *node.Node[V]) *node.Node[V] {
	pivot := n.Right
	n.Right = pivot.Left
	pivot.Left = n

	n.Balance += 1 - min(pivot.Balance, 0)
	pivot.Balance += 1 + max(n.Balance, 0)
	return pivot
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Walk calls fn for every node in key order until fn returns false.
func (t *Tree[V]) Walk(fn func(n *node.Node[V]) bool) {
	if t == nil {
		return
	}
	walk(t.root, fn)
}

func walk[V any](n *node.Node[V], fn func(*node.Node[V]) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.Left, fn) && fn(n) && walk(n.Right, fn)
}

// Detach hands the node structure over to the caller and leaves the tree
// empty.  The caller becomes the owner of every returned node.
func (t *Tree[V]) Detach() *node.Node[V] {
	if t == nil {
		return nil
	}
	root := t.root
	t.root = nil
	t.total = 0
	t.size = 0
	return root
}

// Destroy releases every node, children before parents.
func (t *Tree[V]) Destroy() {
	if t == nil {
		return
	}
	node.Destroy(t.root)
	t.root = nil
	t.total = 0
	t.size = 0
}

// Height returns the number of nodes on the longest path down from n.
func Height[V any](n *node.Node[V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(Height(n.Left), Height(n.Right))
}
