// Package queue provides a generic FIFO queue backed by a slice.
//
// The zero value is an empty queue ready to use. Dequeue and Peek on an empty
// queue return ErrEmpty instead of panicking.
//
// Complexity: Enqueue amortized O(1); Dequeue amortized O(1) (a head index
// advances and the consumed prefix is compacted away once it dominates the buffer).
package queue

import (
	"errors"
	"fmt"
)

// ErrEmpty indicates a Dequeue or Peek on an empty queue.
var ErrEmpty = errors.New("queue: queue is empty")

// compactMin is the smallest consumed prefix worth compacting.
const compactMin = 32

// Queue is a first-in, first-out container. It has no capacity limit.
type Queue[T any] struct {
	items []T // live values are items[head:]
	head  int
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// From returns a queue holding values in order; the first value is dequeued first.
func From[T any](values ...T) *Queue[T] {
	return &Queue[T]{items: append([]T(nil), values...)}
}

// Enqueue appends v at the back.
func (q *Queue[T]) Enqueue(v T) {
	q.items = append(q.items, v)
}

// Dequeue removes and returns the front value.
// Returns ErrEmpty when the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, fmt.Errorf("Dequeue: %w", ErrEmpty)
	}
	front := q.items[q.head]
	q.items[q.head] = zero // drop the reference for the GC
	q.head++
	q.compact()

	return front, nil
}

// Peek returns the front value without removing it.
// Returns ErrEmpty when the queue is empty.
func (q *Queue[T]) Peek() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("Peek: %w", ErrEmpty)
	}

	return q.items[q.head], nil
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// IsEmpty reports whether the queue holds no values.
func (q *Queue[T]) IsEmpty() bool { return q.Len() == 0 }

// Values returns a copy of the contents from front to back.
func (q *Queue[T]) Values() []T {
	return append([]T(nil), q.items[q.head:]...)
}

// compact releases the consumed prefix once it is at least half the buffer.
func (q *Queue[T]) compact() {
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
		return
	}
	if q.head >= compactMin && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items, q.head = q.items[:n], 0
	}
}
