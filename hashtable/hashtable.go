// Package hashtable implements a fixed-size hash table whose buckets are
// AVL trees, so colliding keys cost O(log n) to find instead of O(n).
package hashtable

import (
	"errors"
	"fmt"

	"github.com/fusedbloxxer/huffman-compression/avltree"
	"github.com/fusedbloxxer/huffman-compression/node"
)

// ErrInvalidArgument is returned for a non-positive bucket count, a nil
// table, or a nil or empty key.
var ErrInvalidArgument = errors.New("hashtable: invalid argument")

// HashFunc maps a key to an integer.  The result may be negative.
type HashFunc func(key []byte) int

// Table maps byte sequences to nodes.
type Table[V any] struct {
	buckets []*avltree.Tree[V]
	count   int
	hash    HashFunc
}

// New returns an empty table with bucketCount buckets, hashed with Sum.
func New[V any](bucketCount int) (*Table[V], error) {
	return NewWithHash[V](bucketCount, Sum)
}

// NewWithHash returns an empty table with bucketCount buckets, hashed with
// the given function.
func NewWithHash[V any](bucketCount int, hash HashFunc) (*Table[V], error) {
	if bucketCount <= 0 {
		return nil, fmt.Errorf("%w: bucket count %d", ErrInvalidArgument, bucketCount)
	}
	if hash == nil {
		return nil, fmt.Errorf("%w: nil hash function", ErrInvalidArgument)
	}
	buckets := make([]*avltree.Tree[V], bucketCount)
	for i := range buckets {
		buckets[i] = avltree.New[V]()
	}
	return &Table[V]{buckets: buckets, hash: hash}, nil
}

// Sum adds up the bytes of key, each taken as a signed 8-bit value.
func Sum(key []byte) int {
	sum := 0
	for _, b := range key {
		sum += int(int8(b))
	}
	return sum
}

// Size is the number of buckets.
func (t *Table[V]) Size() int {
	return len(t.buckets)
}

// Len is the number of distinct keys inserted.
func (t *Table[V]) Len() int {
	return t.count
}

// Index returns the bucket that key belongs to, always in [0, Size()).
func (t *Table[V]) Index(key []byte) int {
	n := len(t.buckets)
	i := t.hash(key) % n
	if i < 0 {
		i += n
	}
	return i
}

// Bucket returns the tree backing bucket i.
func (t *Table[V]) Bucket(i int) *avltree.Tree[V] {
	return t.buckets[i]
}

// Insert adds key to its bucket, or bumps its count if already present.  The
// returned bool reports whether the key was new.
func (t *Table[V]) Insert(key []byte) (*node.Node[V], bool, error) {
	if t == nil || t.buckets == nil {
		return nil, false, fmt.Errorf("%w: nil table", ErrInvalidArgument)
	}
	if len(key) == 0 {
		return nil, false, fmt.Errorf("%w: empty key", ErrInvalidArgument)
	}
	n, created, err := t.buckets[t.Index(key)].Insert(key)
	if err != nil {
		return nil, false, err
	}
	if created {
		t.count++
	}
	return n, created, nil
}

// Find looks key up in the one bucket it hashes to.
func (t *Table[V]) Find(key []byte) *node.Node[V] {
	if t == nil || t.buckets == nil || len(key) == 0 {
		return nil
	}
	return t.buckets[t.Index(key)].Find(key)
}

// Scan looks key up in every bucket in turn.  It works on tables filled
// with a different hash function than the caller knows about.
func (t *Table[V]) Scan(key []byte) *node.Node[V] {
	if t == nil || len(key) == 0 {
		return nil
	}
	for _, bucket := range t.buckets {
		if n := bucket.Find(key); n != nil {
			return n
		}
	}
	return nil
}

// Walk calls fn for every node, bucket by bucket and in key order within a
// bucket, until fn returns false.
func (t *Table[V]) Walk(fn func(bucket int, n *node.Node[V]) bool) {
	if t == nil {
		return
	}
	for i, bucket := range t.buckets {
		keepGoing := true
		bucket.Walk(func(n *node.Node[V]) bool {
			keepGoing = fn(i, n)
			return keepGoing
		})
		if !keepGoing {
			return
		}
	}
}

// Detach empties every bucket and returns the detached bucket roots, leaving
// the table with no elements.  The caller owns the returned nodes.
func (t *Table[V]) Detach() []*node.Node[V] {
	if t == nil {
		return nil
	}
	roots := make([]*node.Node[V], 0, len(t.buckets))
	for _, bucket := range t.buckets {
		if root := bucket.Detach(); root != nil {
			roots = append(roots, root)
		}
	}
	t.count = 0
	return roots
}

// Destroy releases every bucket and the bucket array.
func (t *Table[V]) Destroy() {
	if t == nil {
		return
	}
	for _, bucket := range t.buckets {
		bucket.Destroy()
	}
	t.buckets = nil
	t.count = 0
}
