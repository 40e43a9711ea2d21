package matrix_test

import (
	"testing"

	"github.com/katalvlaran/algokit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRowView yields one row in column order, then ends for good.
func TestRowView(t *testing.T) {
	m := mustCounting(t, 3, 6)
	v, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, 6, v.Remaining())
	require.Equal(t, []int{6, 7, 8, 9, 10, 11}, drainRow(v))

	require.Zero(t, v.Remaining())
	_, ok := v.Next()
	require.False(t, ok, "an exhausted view stays exhausted")
}

// TestColumnView yields one column in row order.
func TestColumnView(t *testing.T) {
	m := mustCounting(t, 3, 6)
	v, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, 3, v.Remaining())
	require.Equal(t, []int{1, 7, 13}, drainCol(v))
	_, ok := v.Next()
	require.False(t, ok)
}

// TestViewsOutOfRange ensures Row(rows) and Col(cols) report ErrOutOfRange.
func TestViewsOutOfRange(t *testing.T) {
	m := mustCounting(t, 3, 6)

	rv, err := m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Nil(t, rv)

	cv, err := m.Col(6)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Nil(t, cv)

	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestViewsAreLive checks that writes made mid-iteration are observed.
func TestViewsAreLive(t *testing.T) {
	m := mustCounting(t, 2, 3)
	v, err := m.Row(0)
	require.NoError(t, err)

	first, _ := v.Next()
	require.Equal(t, 0, first)

	m.Set(0, 1, 100)
	m.Set(0, 0, -1) // already visited; not seen again
	require.Equal(t, []int{100, 2}, drainRow(v))
}

// TestViewNextRefWritesThrough mutates a column through the references a view yields.
func TestViewNextRefWritesThrough(t *testing.T) {
	m := mustCounting(t, 3, 2)
	v, err := m.Col(1)
	require.NoError(t, err)
	for p, ok := v.NextRef(); ok; p, ok = v.NextRef() {
		*p *= 10
	}
	compareRows(t, [][]int{{0, 10}, {2, 30}, {4, 50}}, m)
}

// TestViewAllRangeFunc drains views with range-over-func and supports early stop.
func TestViewAllRangeFunc(t *testing.T) {
	m := mustCounting(t, 2, 4)
	rv, err := m.Row(1)
	require.NoError(t, err)

	var cols, vals []int
	for j, x := range rv.All() {
		cols = append(cols, j)
		vals = append(vals, x)
		if j == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, cols)
	assert.Equal(t, []int{4, 5}, vals)
	assert.Equal(t, 2, rv.Remaining(), "early stop leaves the rest for Next")
	assert.Equal(t, []int{6, 7}, drainRow(rv))

	cv, err := m.Col(3)
	require.NoError(t, err)
	got := map[int]int{}
	for i, x := range cv.All() {
		got[i] = x
	}
	assert.Equal(t, map[int]int{0: 3, 1: 7}, got)
}

// TestViewSingleCell covers a 1×1 matrix.
func TestViewSingleCell(t *testing.T) {
	m, err := matrix.FromSlice(1, 1, []string{"x"})
	require.NoError(t, err)
	rv, _ := m.Row(0)
	cv, _ := m.Col(0)
	require.Equal(t, []string{"x"}, drainRow(rv))
	require.Equal(t, []string{"x"}, drainCol(cv))
}
