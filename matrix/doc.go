// Package matrix provides a generic, dense, row-major Matrix.
//
// The matrix package provides:
//
//   - Dense[T], a fixed-size rows×cols grid backed by a single flat slice,
//     where element (i, j) lives at offset i*cols + j.
//   - Constructors for zero-filled and identity matrices (New, Identity),
//     and for matrices built from a producer (FromProducer), an existing
//     slice (FromSlice) or a row literal (FromRows).
//   - Bounded accessors that report absence instead of panicking
//     (Get, GetMut, Set) and a strict variant returning ErrOutOfRange (At).
//   - Lazy RowView and ColumnView cursors that compute each element on demand.
//   - Structural primitives: SwapRows, SwapCols, Transpose, Apply, ApplyMut.
//
// Dimensions never change after construction. Only element values mutate,
// and views observe those mutations because they read the live matrix.
//
// Dense is not safe for concurrent mutation; callers sharing a matrix across
// goroutines must guard it (e.g. with a sync.RWMutex).
//
// Example:
//
//	m, _ := matrix.FromProducer(2, 3, matrix.Count(0))
//	fmt.Print(m.Transpose())
//	// [0, 3]
//	// [1, 4]
//	// [2, 5]
package matrix
