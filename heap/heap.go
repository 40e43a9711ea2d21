package heap

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrEmpty indicates a Pop or Peek on an empty heap.
var ErrEmpty = errors.New("heap: heap is empty")

// ErrNilLess is the panic value of NewFunc when less is nil.
var ErrNilLess = errors.New("heap: less function is nil")

// Kind tells which value sits at the root.
type Kind int

const (
	// Min keeps the smallest value at the root.
	Min Kind = iota
	// Max keeps the largest value at the root.
	Max
	// Custom orders by a caller-supplied less function.
	Custom
)

// String returns "min", "max" or "custom".
func (k Kind) String() string {
	switch k {
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return "custom"
	}
}

// Heap is a binary heap. The zero value is not usable; use a constructor.
type Heap[T any] struct {
	data []T
	less func(a, b T) bool // a belongs closer to the root than b
	kind Kind
}

// NewMin returns an empty min-heap.
func NewMin[T constraints.Ordered]() *Heap[T] {
	return &Heap[T]{less: func(a, b T) bool { return a < b }, kind: Min}
}

// NewMax returns an empty max-heap.
func NewMax[T constraints.Ordered]() *Heap[T] {
	return &Heap[T]{less: func(a, b T) bool { return a > b }, kind: Max}
}

// NewFunc returns an empty heap ordered by less.
// less(a, b) must report whether a has priority over b.
// Panics with ErrNilLess when less is nil.
func NewFunc[T any](less func(a, b T) bool) *Heap[T] {
	if less == nil {
		panic(ErrNilLess.Error())
	}
	return &Heap[T]{less: less, kind: Custom}
}

// FromSliceMin adopts data and rearranges it into a min-heap.
// The caller must not use data afterwards.
func FromSliceMin[T constraints.Ordered](data []T) *Heap[T] {
	h := NewMin[T]()
	h.data = data
	h.build()

	return h
}

// FromSliceMax adopts data and rearranges it into a max-heap.
// The caller must not use data afterwards.
func FromSliceMax[T constraints.Ordered](data []T) *Heap[T] {
	h := NewMax[T]()
	h.data = data
	h.build()

	return h
}

// Kind reports the heap ordering.
func (h *Heap[T]) Kind() Kind { return h.kind }

// Len returns the number of stored values.
func (h *Heap[T]) Len() int { return len(h.data) }

// Push inserts v and restores the heap property.
// Complexity: O(log n).
func (h *Heap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.up(len(h.data) - 1)
}

// Pop removes and returns the root value.
// Returns ErrEmpty when the heap is empty.
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	n := len(h.data)
	if n == 0 {
		return zero, fmt.Errorf("Pop(%s): %w", h.kind, ErrEmpty)
	}
	root := h.data[0]
	h.data[0] = h.data[n-1]
	h.data[n-1] = zero
	h.data = h.data[:n-1]
	h.down(0)

	return root, nil
}

// Peek returns the root value without removing it.
// Returns ErrEmpty when the heap is empty.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, fmt.Errorf("Peek(%s): %w", h.kind, ErrEmpty)
	}

	return h.data[0], nil
}

// build heapifies data bottom-up, starting from the last internal node.
func (h *Heap[T]) build() {
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
}

// up moves the value at i toward the root while it beats its parent.
func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[i], h.data[parent]) {
			return
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

// down moves the value at i toward the leaves while a child beats it.
func (h *Heap[T]) down(i int) {
	n := len(h.data)
	for {
		best := i
		l, r := 2*i+1, 2*i+2
		if l < n && h.less(h.data[l], h.data[best]) {
			best = l
		}
		if r < n && h.less(h.data[r], h.data[best]) {
			best = r
		}
		if best == i {
			return
		}
		h.data[i], h.data[best] = h.data[best], h.data[i]
		i = best
	}
}
