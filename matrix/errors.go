// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and structural operations return these sentinels, wrapped
// with call-site context; tests MUST match them via errors.Is. Out-of-bounds
// reads through Get/GetMut/Set are NOT errors and report absence instead.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Returned by At, Row, Col, SwapRows and SwapCols.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDataLength indicates that a backing slice does not hold exactly rows*cols elements.
	ErrDataLength = errors.New("matrix: data length mismatch")

	// ErrShortProducer indicates that a producer ended before yielding rows*cols values.
	ErrShortProducer = errors.New("matrix: producer yielded too few values")

	// ErrNilProducer indicates that FromProducer received a nil sequence.
	ErrNilProducer = errors.New("matrix: producer is nil")

	// ErrRaggedRows indicates that a row literal has rows of different lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")
)

// ---------- error context tags ----------

const (
	ctxAt           = "At"
	ctxRow          = "Row"
	ctxCol          = "Col"
	ctxSwapRows     = "SwapRows"
	ctxSwapCols     = "SwapCols"
	ctxNew          = "New"
	ctxIdentity     = "Identity"
	ctxFromSlice    = "FromSlice"
	ctxFromProducer = "FromProducer"
	ctxFromRows     = "FromRows"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(a,b): <sentinel>". Complexity: O(1).
func denseErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, a, b, err)
}

// ctorErrorf wraps a constructor failure with the requested shape.
// Format: "matrix.<ctor>(rows,cols): <sentinel>".
func ctorErrorf(ctor string, rows, cols int, err error) error {
	return fmt.Errorf("matrix.%s(%d,%d): %w", ctor, rows, cols, err)
}
