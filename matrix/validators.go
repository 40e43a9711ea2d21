// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for shape and index checks.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly
//     with their own method tag and coordinates.
//
// Note:
//   - All checks are pure, allocate nothing and run in O(1).

package matrix

import "math"

// validateShape ensures rows>0 && cols>0 and that rows*cols fits in an int.
// Returns ErrInvalidDimensions otherwise.
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if rows > math.MaxInt/cols { // rows*cols would wrap
		return ErrInvalidDimensions
	}

	return nil
}

// validateDataLen ensures a backing slice holds exactly rows*cols elements.
// Assumes the shape was already validated.
func validateDataLen(rows, cols, n int) error {
	if n != rows*cols {
		return ErrDataLength
	}

	return nil
}

// validateIndex ensures 0 <= i < n. Used for row (n=r) and column (n=c) checks.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// inBounds reports whether (row, col) addresses a cell of m.
// Complexity: O(1).
func (m *Dense[T]) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}
