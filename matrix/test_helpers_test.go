// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures so each test states only what it checks.

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/algokit/matrix"
	"github.com/stretchr/testify/require"
)

// mustCounting ALLOCATES an r×c matrix filled with 0,1,2,... in row-major order.
// Fatal on error. Cell (i,j) holds i*c+j.
func mustCounting(t testing.TB, r, c int) *matrix.Dense[int] {
	t.Helper()
	m, err := matrix.FromProducer(r, c, matrix.Count(0))
	require.NoError(t, err)

	return m
}

// mustRows builds a matrix from a row literal or fails the test.
func mustRows[T any](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// toRows materializes m as [][]T via Get, independent of the backing layout.
func toRows[T any](m *matrix.Dense[T]) [][]T {
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = make([]T, m.Cols())
		for j := range out[i] {
			out[i][j], _ = m.Get(i, j)
		}
	}

	return out
}

// compareRows fails with a readable diff when m does not hold want.
func compareRows[T any](t *testing.T, want [][]T, m *matrix.Dense[T]) {
	t.Helper()
	if diff := cmp.Diff(want, toRows(m)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// drainRow collects everything a row view yields.
func drainRow[T any](v *matrix.RowView[T]) []T {
	var out []T
	for x, ok := v.Next(); ok; x, ok = v.Next() {
		out = append(out, x)
	}

	return out
}

// drainCol collects everything a column view yields.
func drainCol[T any](v *matrix.ColumnView[T]) []T {
	var out []T
	for x, ok := v.Next(); ok; x, ok = v.Next() {
		out = append(out, x)
	}

	return out
}
