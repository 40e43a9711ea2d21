// SPDX-License-Identifier: MIT

// Package matrix - structural operations and traversal.
//
// Purpose:
//   - In-place row/column swaps addressed through the canonical i*cols + j formula.
//   - Transpose into a freshly owned matrix.
//   - Row-major visitors (Apply/ApplyMut/Do) with fixed loop order.
//
// Determinism:
//   - Every loop runs in a fixed order; no allocation besides Transpose's result.

package matrix

// SwapRows exchanges rows a and b element by element, keeping column alignment.
// MAIN DESCRIPTION:
//   - Swaps data[a*c+j] with data[b*c+j] for every column j.
//
// Errors:
//   - ErrOutOfRange (wrapped as "Dense.SwapRows(a,b): ...") when either index is
//     outside [0, Rows()); the matrix is left untouched.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense[T]) SwapRows(a, b int) error {
	if err := validateIndex(a, m.r); err != nil {
		return denseErrorf(ctxSwapRows, a, b, err)
	}
	if err := validateIndex(b, m.r); err != nil {
		return denseErrorf(ctxSwapRows, a, b, err)
	}
	if a == b {
		return nil
	}

	var j, ia, ib int
	for j = 0; j < m.c; j++ {
		ia, ib = a*m.c+j, b*m.c+j
		m.data[ia], m.data[ib] = m.data[ib], m.data[ia]
	}

	return nil
}

// SwapCols exchanges columns a and b across all rows.
// Columns are strided in a row-major store, so this is r single-element swaps
// of data[i*c+a] with data[i*c+b].
//
// Errors: ErrOutOfRange when either index is outside [0, Cols()); no change.
// Complexity: O(r).
func (m *Dense[T]) SwapCols(a, b int) error {
	if err := validateIndex(a, m.c); err != nil {
		return denseErrorf(ctxSwapCols, a, b, err)
	}
	if err := validateIndex(b, m.c); err != nil {
		return denseErrorf(ctxSwapCols, a, b, err)
	}
	if a == b {
		return nil
	}

	var i, ia, ib int
	for i = 0; i < m.r; i++ {
		ia, ib = i*m.c+a, i*m.c+b
		m.data[ia], m.data[ib] = m.data[ib], m.data[ia]
	}

	return nil
}

// Transpose returns a new c×r matrix whose (i, j) equals m's (j, i).
// MAIN DESCRIPTION:
//   - The result owns copies of the values; it does not alias m.
//
// Implementation:
//   - Walk source columns 0..c-1 through column views; each column becomes one
//     contiguous row of the result, so the result buffer is col 0, col 1, ...
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Transpose() *Dense[T] {
	data := make([]T, 0, len(m.data))
	for j := 0; j < m.c; j++ {
		view := &ColumnView[T]{m: m, col: j} // j is in range by construction
		for v, ok := view.Next(); ok; v, ok = view.Next() {
			data = append(data, v)
		}
	}

	return &Dense[T]{r: m.c, c: m.r, data: data}
}

// Apply calls fn once per element in row-major (backing-store) order.
// fn receives values, so it cannot mutate the matrix.
// Complexity: O(r*c).
func (m *Dense[T]) Apply(fn func(v T)) {
	for _, v := range m.data {
		fn(v)
	}
}

// ApplyMut calls fn once per element in row-major order with a pointer to the
// cell, allowing in-place transformation.
//
//	m.ApplyMut(func(v *int) { *v *= 2 })
//
// Complexity: O(r*c).
func (m *Dense[T]) ApplyMut(fn func(v *T)) {
	for i := range m.data {
		fn(&m.data[i])
	}
}

// Do visits each element (i, j) in row-major order and calls fn(i, j, v).
// Stops early when fn returns false.
//
// Complexity: O(r*c) worst case, Space O(1).
func (m *Dense[T]) Do(fn func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !fn(i, j, m.data[base+j]) {
				return
			}
		}
	}
}
