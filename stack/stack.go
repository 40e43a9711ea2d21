// Package stack provides a generic LIFO stack backed by a growable slice.
//
// The zero value is an empty stack ready to use. Pop and Peek on an empty
// stack return ErrEmpty instead of panicking.
//
// Complexity: Push amortized O(1); Pop, Peek, Len O(1).
package stack

import (
	"errors"
	"fmt"
)

// ErrEmpty indicates a Pop or Peek on an empty stack.
var ErrEmpty = errors.New("stack: stack is empty")

// Stack is a last-in, first-out container. It has no capacity limit.
type Stack[T any] struct {
	items []T // bottom at index 0, top at len-1
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// From returns a stack holding values pushed in order, so the first value is
// the oldest (bottom) and the last value is on top.
func From[T any](values ...T) *Stack[T] {
	s := &Stack[T]{items: make([]T, 0, len(values))}
	for _, v := range values {
		s.Push(v)
	}

	return s
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top value.
// Returns ErrEmpty when there is nothing to pop.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, fmt.Errorf("Pop: %w", ErrEmpty)
	}
	top := s.items[n-1]
	s.items[n-1] = zero // drop the reference for the GC
	s.items = s.items[:n-1]

	return top, nil
}

// Peek returns the top value without removing it.
// Returns ErrEmpty when the stack is empty.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, fmt.Errorf("Peek: %w", ErrEmpty)
	}

	return s.items[len(s.items)-1], nil
}

// Len returns the number of stored values.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Values returns a copy of the contents from bottom to top.
func (s *Stack[T]) Values() []T {
	return append([]T(nil), s.items...)
}
