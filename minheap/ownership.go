package minheap

// Mode names an ownership discipline.
type Mode byte

const (
	// Weak heaps borrow their elements.
	Weak Mode = iota + 1

	// Deep heaps own private copies of their elements.
	Deep
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case Weak:
		return "weak"
	case Deep:
		return "deep"
	default:
		return "invalid"
	}
}

// Ownership decides what a heap stores for each pushed element and what it
// does with elements it still holds when they leave it.
type Ownership[T any] interface {
	// Mode reports the discipline implemented.
	Mode() Mode

	// Acquire returns the value to store for a pushed element.
	Acquire(x T) T

	// Release disposes of a stored value the heap owns.
	Release(x T)
}

// Borrow returns the Weak ownership strategy: elements are stored as given
// and never released by the heap.
func Borrow[T any]() Ownership[T] {
	return borrowed[T]{}
}

type borrowed[T any] struct{}

func (borrowed[T]) Mode() Mode    { return Weak }
func (borrowed[T]) Acquire(x T) T { return x }
func (borrowed[T]) Release(x T)   {}

// Own returns the Deep ownership strategy: every pushed element is replaced
// by copyFn(element), and release is called on each copy the heap disposes
// of.  release may be nil.
func Own[T any](copyFn func(T) T, release func(T)) Ownership[T] {
	return owned[T]{copyFn: copyFn, release: release}
}

type owned[T any] struct {
	copyFn  func(T) T
	release func(T)
}

func (owned[T]) Mode() Mode { return Deep }

func (o owned[T]) Acquire(x T) T {
	return o.copyFn(x)
}

func (o owned[T]) Release(x T) {
	if o.release != nil {
		o.release(x)
	}
}
