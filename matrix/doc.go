// Package matrix offers a dense, row-major matrix and the naive product kernel.
//
// The matrix package provides:
//
//   - Dense: a contiguous row-major buffer with bounds-safe At/Set that
//     return sentinel errors instead of panicking.
//   - Mul: the textbook triple-loop product C = A × B, with a flat-slice
//     fast path for *Dense operands and a generic At/Set fallback.
//   - MultiplyRows: the same product over plain [][]float64 rows, for
//     callers that never want to see a Matrix value.
//   - Validators and sentinel errors (ErrDimensionMismatch, ErrBadShape, ...)
//     so every failure is matchable with errors.Is.
//
// Shapes are always validated: multiplying an m×n by a k×p matrix with
// n != k fails with ErrDimensionMismatch rather than reading out of range.
//
//	c, err := matrix.MultiplyRows(
//		[][]float64{{1, 2}, {3, 4}},
//		[][]float64{{5, 6}, {7, 8}},
//	)
//	// c == [[19 22] [43 50]]
//
// Complexity: Mul is O(m·n·p) time and O(m·p) space. No blocking, no
// goroutines.
package matrix
