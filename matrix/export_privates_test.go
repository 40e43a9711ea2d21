// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private validators.
//
// Purpose:
//   - Expose UNEXPORTED validators to matrix_test ONLY.
//   - The _test.go suffix keeps this surface out of production builds.

// ValidateShape_TestOnly forwards to validateShape.
func ValidateShape_TestOnly(rows, cols int) error { return validateShape(rows, cols) }

// ValidateDataLen_TestOnly forwards to validateDataLen.
func ValidateDataLen_TestOnly(rows, cols, n int) error { return validateDataLen(rows, cols, n) }

// ValidateIndex_TestOnly forwards to validateIndex.
func ValidateIndex_TestOnly(i, n int) error { return validateIndex(i, n) }
