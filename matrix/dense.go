// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & constructors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee that a Dense is fully populated from the moment it is returned:
//     constructors either succeed completely or return (nil, error).
//
// Complexity quicksheet:
//   - New/Identity: O(r*c) zero-init; FromSlice: O(1); FromProducer/FromRows: O(r*c).

package matrix

import (
	"iter"
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0 and fixed for the lifetime of the value.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T any] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// New creates an r×c matrix with every cell set to the zero value of T.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer (make zero-fills deterministically).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](rows, cols int) (*Dense[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, ctorErrorf(ctxNew, rows, cols, err)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromProducer creates an r×c matrix populated row by row from seq.
// MAIN DESCRIPTION:
//   - The first cols values fill row 0, the next cols values fill row 1, and so on.
//   - Exactly rows*cols values are consumed; the producer is stopped afterwards,
//     so infinite producers such as Count are fine.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0 (seq is not touched).
//   - ErrNilProducer when seq is nil.
//   - ErrShortProducer when seq ends early; no partially filled matrix escapes.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromProducer[T any](rows, cols int, seq iter.Seq[T]) (*Dense[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, ctorErrorf(ctxFromProducer, rows, cols, err)
	}
	if seq == nil {
		return nil, ctorErrorf(ctxFromProducer, rows, cols, ErrNilProducer)
	}

	n := rows * cols
	data := make([]T, 0, n)
	for v := range seq {
		data = append(data, v)
		if len(data) == n {
			break // leave the rest of the producer unconsumed
		}
	}
	if len(data) < n {
		return nil, ctorErrorf(ctxFromProducer, rows, cols, ErrShortProducer)
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// FromSlice creates an r×c matrix that adopts data as its backing store.
// No copy is made: the matrix owns data from now on and the caller must not
// keep writing to it.
//
// Errors: ErrInvalidDimensions, ErrDataLength (len(data) != rows*cols).
// Complexity: O(1).
func FromSlice[T any](rows, cols int, data []T) (*Dense[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, ctorErrorf(ctxFromSlice, rows, cols, err)
	}
	if err := validateDataLen(rows, cols, len(data)); err != nil {
		return nil, ctorErrorf(ctxFromSlice, rows, cols, err)
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// FromRows copies a row literal into a new matrix, e.g.
//
//	m, _ := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
//
// Every row must have the same, non-zero length.
// Errors: ErrInvalidDimensions (no rows or empty rows), ErrRaggedRows.
func FromRows[T any](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	if err := validateShape(r, c); err != nil {
		return nil, ctorErrorf(ctxFromRows, r, c, err)
	}

	data := make([]T, 0, r*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, ctorErrorf(ctxFromRows, r, c, ErrRaggedRows)
		}
		data = append(data, row...)
	}

	return &Dense[T]{r: r, c: c, data: data}, nil
}

// Identity creates a size×size matrix with ones on the main diagonal.
// The diagonal cells are exactly data[i*(size+1)] for i in [0, size).
//
// Errors: ErrInvalidDimensions when size<=0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity[T Number](size int) (*Dense[T], error) {
	if err := validateShape(size, size); err != nil {
		return nil, ctorErrorf(ctxIdentity, size, size, err)
	}

	data := make([]T, size*size)
	for i := 0; i < size; i++ { // fixed i order
		data[i*(size+1)] = 1
	}

	return &Dense[T]{r: size, c: size, data: data}, nil
}
