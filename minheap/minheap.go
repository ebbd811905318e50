// Package minheap implements a binary min-heap whose storage discipline
// (borrowed or owned elements) is fixed at construction.
//
// Unlike container/heap, the backing array is managed explicitly: it doubles
// when full and halves when less than a quarter of it is in use.
//
package minheap

import (
	"errors"

	"github.com/chronos-tachyon/assert"
)

var (
	// ErrNilHeap is returned when a method is called on a nil *Heap.
	ErrNilHeap = errors.New("minheap: nil heap")

	// ErrNilElement is returned when pushing the zero value of T.
	ErrNilElement = errors.New("minheap: nil element")

	// ErrEmpty is returned when popping from an empty heap.
	ErrEmpty = errors.New("minheap: empty heap")
)

// Heap is a min-heap ordered by a comparator.
type Heap[T comparable] struct {
	elements []T // len(elements) is the capacity
	count    int
	own      Ownership[T]
	compare  func(a, b T) int
}

// New returns an empty, zero-capacity heap.  compare must return a negative
// number when a sorts before b.
func New[T comparable](own Ownership[T], compare func(a, b T) int) *Heap[T] {
	assert.Assertf(own != nil, "minheap.New: nil ownership")
	assert.Assertf(compare != nil, "minheap.New: nil comparator")
	return &Heap[T]{own: own, compare: compare}
}

// Len is the number of live elements.
func (h *Heap[T]) Len() int {
	if h == nil {
		return 0
	}
	return h.count
}

// Cap is the number of allocated slots.
func (h *Heap[T]) Cap() int {
	if h == nil {
		return 0
	}
	return len(h.elements)
}

// Mode reports the heap's ownership discipline.
func (h *Heap[T]) Mode() Mode {
	return h.own.Mode()
}

// Peek returns the minimum without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	var zero T
	if h == nil || h.count == 0 {
		return zero, false
	}
	return h.elements[0], true
}

// Push stores x according to the heap's ownership and restores heap order.
func (h *Heap[T]) Push(x T) error {
	var zero T
	if h == nil {
		return ErrNilHeap
	}
	if x == zero {
		return ErrNilElement
	}

	if h.count == len(h.elements) {
		h.resize(max(1, 2*len(h.elements)))
	}

	i := h.count
	h.elements[i] = h.own.Acquire(x)
	h.count++

	for i > 0 {
		parent := (i - 1) / 2
		if h.compare(h.elements[i], h.elements[parent]) >= 0 {
			break
		}
		h.swap(i, parent)
		i = parent
	}
	return nil
}

// Pop removes and returns the minimum.  For a Deep heap the caller takes over
// ownership of the returned copy.
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	if h == nil {
		return zero, ErrNilHeap
	}
	if h.count == 0 {
		return zero, ErrEmpty
	}

	last := h.count - 1
	h.swap(0, last)
	x := h.elements[last]
	h.elements[last] = zero
	h.count--

	switch {
	case h.count == 0:
		h.elements = nil
	case h.count < len(h.elements)/4:
		h.resize(len(h.elements) / 2)
	}

	h.siftDown(0)
	return x, nil
}

// PopRelease removes the minimum and, for a Deep heap, releases it.
func (h *Heap[T]) PopRelease() error {
	x, err := h.Pop()
	if err != nil {
		return err
	}
	if h.own.Mode() == Deep {
		h.own.Release(x)
	}
	return nil
}

// Destroy empties the heap.  A Deep heap releases every remaining element.
func (h *Heap[T]) Destroy() {
	if h == nil {
		return
	}
	if h.own.Mode() == Deep {
		for i := 0; i < h.count; i++ {
			h.own.Release(h.elements[i])
		}
	}
	h.elements = nil
	h.count = 0
}

func (h *Heap[T]) siftDown(i int) {
	for {
		left := 2*i + 1
		if left >= h.count {
			return
		}
		child := left
		if right := left + 1; right < h.count && h.compare(h.elements[right], h.elements[left]) < 0 {
			child = right
		}
		if h.compare(h.elements[i], h.elements[child]) <= 0 {
			return
		}
		h.swap(i, child)
		i = child
	}
}

func (h *Heap[T]) resize(capacity int) {
	assert.Assertf(capacity >= h.count, "minheap: resize to %d below count %d", capacity, h.count)
	elements := make([]T, capacity)
	copy(elements, h.elements[:h.count])
	h.elements = elements
}

func (h *Heap[T]) swap(i, j int) {
	h.elements[i], h.elements[j] = h.elements[j], h.elements[i]
}
