// SPDX-License-Identifier: MIT

// Package matrix - lazy row and column views.
//
// Purpose:
//   - Expose one row or one column as a forward-only cursor without copying.
//   - Each step re-derives the offset row*cols + col from the live matrix and
//     re-checks bounds, so a view can never read outside the backing store.
//
// Behavior highlights:
//   - Construction is O(1) time and memory.
//   - Views are live: values written through the matrix after the view was
//     created are observed by later Next calls.
//   - Views are not restartable; ask the matrix for a new one instead.

package matrix

import "iter"

// RowView is a non-owning cursor over the cells of one matrix row,
// yielded in column order 0..cols-1.
type RowView[T any] struct {
	m   *Dense[T] // borrowed; must outlive the view
	row int       // fixed row
	col int       // next column to yield
}

// ColumnView is a non-owning cursor over the cells of one matrix column,
// yielded in row order 0..rows-1.
type ColumnView[T any] struct {
	m   *Dense[T] // borrowed; must outlive the view
	row int       // next row to yield
	col int       // fixed column
}

// Row returns a view over row `row`.
// Errors: ErrOutOfRange (wrapped as "Dense.Row(row,0): ...") when row ∉ [0, Rows()).
// Complexity: O(1).
func (m *Dense[T]) Row(row int) (*RowView[T], error) {
	if err := validateIndex(row, m.r); err != nil {
		return nil, denseErrorf(ctxRow, row, 0, err)
	}

	return &RowView[T]{m: m, row: row}, nil
}

// Col returns a view over column `col`.
// Errors: ErrOutOfRange (wrapped as "Dense.Col(0,col): ...") when col ∉ [0, Cols()).
// Complexity: O(1).
func (m *Dense[T]) Col(col int) (*ColumnView[T], error) {
	if err := validateIndex(col, m.c); err != nil {
		return nil, denseErrorf(ctxCol, 0, col, err)
	}

	return &ColumnView[T]{m: m, col: col}, nil
}

// NextRef advances the cursor and returns a pointer to the current cell,
// or (nil, false) once the row is exhausted.
func (v *RowView[T]) NextRef() (*T, bool) {
	cell := v.m.GetMut(v.row, v.col)
	if cell == nil {
		return nil, false
	}
	v.col++

	return cell, true
}

// Next advances the cursor and returns the current value, or (zero, false)
// once the row is exhausted. Subsequent calls keep returning false.
func (v *RowView[T]) Next() (T, bool) {
	cell, ok := v.NextRef()
	if !ok {
		var zero T
		return zero, false
	}

	return *cell, true
}

// Remaining returns how many cells Next will still yield.
func (v *RowView[T]) Remaining() int {
	if v.col >= v.m.c {
		return 0
	}

	return v.m.c - v.col
}

// All drains the view as a range-over-func sequence of (col, value) pairs.
//
//	for j, x := range view.All() { ... }
//
// Stopping the loop early leaves the remaining cells for the next Next call.
func (v *RowView[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for {
			j := v.col
			x, ok := v.Next()
			if !ok || !yield(j, x) {
				return
			}
		}
	}
}

// NextRef advances the cursor and returns a pointer to the current cell,
// or (nil, false) once the column is exhausted.
func (v *ColumnView[T]) NextRef() (*T, bool) {
	cell := v.m.GetMut(v.row, v.col)
	if cell == nil {
		return nil, false
	}
	v.row++

	return cell, true
}

// Next advances the cursor and returns the current value, or (zero, false)
// once the column is exhausted. Subsequent calls keep returning false.
func (v *ColumnView[T]) Next() (T, bool) {
	cell, ok := v.NextRef()
	if !ok {
		var zero T
		return zero, false
	}

	return *cell, true
}

// Remaining returns how many cells Next will still yield.
func (v *ColumnView[T]) Remaining() int {
	if v.row >= v.m.r {
		return 0
	}

	return v.m.r - v.row
}

// All drains the view as a range-over-func sequence of (row, value) pairs.
func (v *ColumnView[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for {
			i := v.row
			x, ok := v.Next()
			if !ok || !yield(i, x) {
				return
			}
		}
	}
}
