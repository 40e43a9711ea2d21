// SPDX-License-Identifier: MIT

// Package matrix - Dense accessors.
//
// Purpose:
//   - Bounded element access: Get/GetMut/Set report absence instead of panicking.
//   - Strict access for callers that prefer errors (At → ErrOutOfRange).
//   - Deep copies and a readable dump for diagnostics.
//
// Complexity quicksheet:
//   - Rows/Cols/Shape/Len/Get/GetMut/Set/At: O(1); Clone/Data/String/Equal: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[int])(nil)

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of stored elements (rows*cols).
func (m *Dense[T]) Len() int { return len(m.data) }

// Get returns the value at (row, col) and true, or the zero value and false
// when either index is outside the matrix. Absence is not an error.
// Complexity: O(1).
func (m *Dense[T]) Get(row, col int) (T, bool) {
	if !m.inBounds(row, col) {
		var zero T
		return zero, false
	}

	return m.data[row*m.c+col], true
}

// GetMut returns a pointer to the cell at (row, col), or nil when out of bounds.
// The pointer aliases the backing store: writes through it are visible to the
// matrix and to any live views.
func (m *Dense[T]) GetMut(row, col int) *T {
	if !m.inBounds(row, col) {
		return nil
	}

	return &m.data[row*m.c+col]
}

// Set stores v at (row, col) and returns true.
// Out of bounds it returns false and leaves the matrix untouched.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) bool {
	cell := m.GetMut(row, col)
	if cell == nil {
		return false
	}
	*cell = v

	return true
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Strict counterpart of Get for callers that propagate errors.
//
// Errors:
//   - ErrOutOfRange when out of bounds, wrapped as "Dense.At(row,col): ...".
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	v, ok := m.Get(row, col)
	if !ok {
		return v, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return v, nil
}

// Clone returns a deep copy with an independent backing store.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Data returns a row-major copy of the backing store.
func (m *Dense[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Equal reports whether a and b have the same shape and identical elements.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Complexity: O(r*c).
func Equal[T comparable](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// String renders one line per row with comma-separated values, e.g. "[1, 2]\n[3, 4]\n".
// Intended for logs and debugging; not for hot paths.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
