// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.

package matrix

// NewZeros returns a zero-filled rows×cols matrix.
// Thin alias of New with an intention-revealing name.
func NewZeros[T Number](rows, cols int) (*Dense[T], error) { return New[T](rows, cols) }

// ZerosLike returns a zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing.
func ZerosLike[T Number](m *Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, ctorErrorf("ZerosLike", 0, 0, ErrInvalidDimensions)
	}

	return New[T](m.r, m.c)
}

// IdentityLike returns the identity with dimension Rows(m); m must be square.
// Errors: ErrInvalidDimensions for nil or non-square m.
func IdentityLike[T Number](m *Dense[T]) (*Dense[T], error) {
	if m == nil || m.r != m.c {
		r, c := 0, 0
		if m != nil {
			r, c = m.r, m.c
		}
		return nil, ctorErrorf("IdentityLike", r, c, ErrInvalidDimensions)
	}

	return Identity[T](m.r)
}

// T is an alias for (*Dense).Transpose: returns mᵀ.
func T[E any](m *Dense[E]) *Dense[E] { return m.Transpose() }

// Sum folds every element with +. Implemented on top of Apply.
// Complexity: O(rc).
func Sum[T Number](m *Dense[T]) T {
	var total T
	m.Apply(func(v T) { total += v })

	return total
}

// Scale multiplies every element by alpha in place. Implemented on top of ApplyMut.
// Complexity: O(rc).
func Scale[T Number](m *Dense[T], alpha T) {
	m.ApplyMut(func(v *T) { *v *= alpha })
}
