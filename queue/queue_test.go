package queue_test

import (
	"testing"

	"github.com/katalvlaran/algokit/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQueue(t *testing.T) {
	q := queue.New[int]()
	assert.Equal(t, 0, q.Len())
	assert.True(t, q.IsEmpty())
}

func TestEnqueueDequeue(t *testing.T) {
	q := queue.New[int]()
	q.Enqueue(42)
	require.Equal(t, 1, q.Len())

	v, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 0, q.Len())
}

// TestFIFOOrder dequeues values in insertion order.
func TestFIFOOrder(t *testing.T) {
	q := queue.From(3, 4, 5)
	q.Enqueue(6)
	require.Equal(t, []int{3, 4, 5, 6}, q.Values())

	var got []int
	for !q.IsEmpty() {
		v, err := q.Dequeue()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 4, 5, 6}, got)
}

func TestPeekDoesNotRemove(t *testing.T) {
	q := queue.From("a", "b")
	v, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.Equal(t, 2, q.Len())
}

// TestEmptyErrors ensures Dequeue and Peek report ErrEmpty, including on the zero value.
func TestEmptyErrors(t *testing.T) {
	var q queue.Queue[int]
	_, err := q.Peek()
	require.ErrorIs(t, err, queue.ErrEmpty)
	_, err = q.Dequeue()
	require.ErrorIs(t, err, queue.ErrEmpty)
}

// TestInterleavedLong pushes and pops across many compaction cycles.
func TestInterleavedLong(t *testing.T) {
	q := queue.New[int]()
	next, want := 0, 0
	for round := 0; round < 50; round++ {
		for i := 0; i < 7; i++ {
			q.Enqueue(next)
			next++
		}
		for i := 0; i < 5; i++ {
			v, err := q.Dequeue()
			require.NoError(t, err)
			require.Equal(t, want, v)
			want++
		}
	}
	require.Equal(t, next-want, q.Len())
	vals := q.Values()
	require.Len(t, vals, q.Len())
	require.Equal(t, want, vals[0])
	require.Equal(t, next-1, vals[len(vals)-1])
}
