package minheap

import (
	"errors"
	"math/rand"
	"testing"
)

type item struct {
	weight int
	freed  bool
}

func compareItems(a, b *item) int {
	return a.weight - b.weight
}

func TestHeap_PopOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	h := New(Borrow[*item](), compareItems)

	pushed, popped := 0, 0
	last := -1
	for i := 0; i < 5000; i++ {
		if h.Len() == 0 || rng.Intn(3) != 0 {
			if err := h.Push(&item{weight: rng.Intn(100)}); err != nil {
				t.Fatalf("Push failed: %v", err)
			}
			pushed++
			last = -1
			continue
		}
		x, err := h.Pop()
		if err != nil {
			t.Fatalf("Pop failed: %v", err)
		}
		popped++
		if last > x.weight {
			t.Fatalf("consecutive pops out of order: %d then %d", last, x.weight)
		}
		last = x.weight
		if h.Len() != pushed-popped {
			t.Fatalf("wrong count:\n\texpect: %d\n\tactual: %d", pushed-popped, h.Len())
		}
	}

	last = -1
	for h.Len() > 0 {
		x, _ := h.Pop()
		if last > x.weight {
			t.Fatalf("drain out of order: %d then %d", last, x.weight)
		}
		last = x.weight
	}
}

func TestHeap_Capacity(t *testing.T) {
	h := New(Borrow[*item](), compareItems)
	if h.Cap() != 0 {
		t.Errorf("new heap has capacity %d", h.Cap())
	}

	type testRow struct {
		size int
		cap  int
	}

	growth := [...]testRow{{1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8}, {9, 16}}
	n := 0
	for _, row := range growth {
		for n < row.size {
			_ = h.Push(&item{weight: n})
			n++
		}
		if h.Cap() != row.cap {
			t.Errorf("after %d pushes:\n\texpect cap: %d\n\tactual cap: %d", row.size, row.cap, h.Cap())
		}
	}

	// 9 elements in 16 slots: shrinking starts once fewer than 4 remain.
	shrink := [...]testRow{{4, 16}, {3, 8}, {1, 4}, {0, 0}}
	for _, row := range shrink {
		for h.Len() > row.size {
			_, _ = h.Pop()
		}
		if h.Cap() != row.cap {
			t.Errorf("down to %d elements:\n\texpect cap: %d\n\tactual cap: %d", row.size, row.cap, h.Cap())
		}
	}
}

func TestHeap_LeftChildOnTies(t *testing.T) {
	root := &item{weight: 0}
	left, right := &item{weight: 5}, &item{weight: 5}
	h := New(Borrow[*item](), compareItems)
	for _, x := range []*item{root, left, right, {weight: 9}} {
		_ = h.Push(x)
	}

	if first, _ := h.Pop(); first != root {
		t.Fatalf("wrong minimum")
	}
	if second, _ := h.Pop(); second != left {
		t.Errorf("sift-down did not favor the left child on a tie")
	}
}

func TestHeap_Weak(t *testing.T) {
	x := &item{weight: 3}
	h := New(Borrow[*item](), compareItems)
	_ = h.Push(x)
	if top, _ := h.Peek(); top != x {
		t.Errorf("weak heap stored a copy")
	}
	h.Destroy()
	if x.freed || h.Len() != 0 || h.Cap() != 0 {
		t.Errorf("weak Destroy touched a borrowed element or kept storage")
	}
}

func TestHeap_Deep(t *testing.T) {
	var copies []*item
	own := Own(func(x *item) *item {
		c := &item{weight: x.weight}
		copies = append(copies, c)
		return c
	}, func(x *item) {
		x.freed = true
	})

	h := New(own, compareItems)
	if h.Mode() != Deep {
		t.Fatalf("wrong mode: %v", h.Mode())
	}
	originals := []*item{{weight: 2}, {weight: 1}, {weight: 3}}
	for _, x := range originals {
		_ = h.Push(x)
	}

	top, _ := h.Pop()
	if top == originals[1] || top.weight != 1 {
		t.Errorf("deep heap returned a borrowed element")
	}
	if top.freed {
		t.Errorf("Pop released the element handed to the caller")
	}

	if err := h.PopRelease(); err != nil {
		t.Fatalf("PopRelease failed: %v", err)
	}
	h.Destroy()

	freed := 0
	for _, c := range copies {
		if c.freed {
			freed++
		}
	}
	if freed != 2 {
		t.Errorf("wrong number of released copies:\n\texpect: %d\n\tactual: %d", 2, freed)
	}
	for _, x := range originals {
		if x.freed {
			t.Errorf("deep heap released a caller's element")
		}
	}
}

func TestHeap_Errors(t *testing.T) {
	h := New(Borrow[*item](), compareItems)
	if err := h.Push(nil); !errors.Is(err, ErrNilElement) {
		t.Errorf("expected ErrNilElement, got %v", err)
	}
	if h.Len() != 0 || h.Cap() != 0 {
		t.Errorf("failed Push mutated the heap")
	}
	if _, err := h.Pop(); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	var nilHeap *Heap[*item]
	if err := nilHeap.Push(&item{}); !errors.Is(err, ErrNilHeap) {
		t.Errorf("expected ErrNilHeap, got %v", err)
	}
}
