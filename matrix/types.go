// SPDX-License-Identifier: MIT

// Package matrix: element constraints and producers.
package matrix

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint for constructors that need neutral
// elements: the zero value is the additive identity and T(1) the
// multiplicative identity.
type Number interface {
	constraints.Integer | constraints.Float
}

// Count returns an infinite producer yielding start, start+1, start+2, ...
// It stops as soon as the consumer does, so it is safe to pass to FromProducer.
//
// Complexity: O(1) per yielded value.
func Count[T Number](start T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := start; ; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns a finite producer over vals in order.
// Handy for FromProducer when the caller already holds the values but
// wants the matrix to own a separate buffer.
func Values[T any](vals ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}
}
