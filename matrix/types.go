// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface, and nothing else. The concrete
// Dense type lives in dense.go; errors and options sit in their own files
// following the one-concern-per-file layout of the package.
package matrix

// Matrix is a mutable two-dimensional array of float64. Kernels accept the
// interface and, when the value is actually a *Dense, switch to contiguous
// flat-slice loops; any other implementation takes the At/Set fallback and
// produces the same results.
//
// Every method is O(1) except Clone, which copies all rows*cols elements.
type Matrix interface {
	// Rows reports the row count.
	Rows() int

	// Cols reports the column count.
	Cols() int

	// At reads the element at (i, j). Indices outside
	// [0, Rows()) x [0, Cols()) yield ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set writes v at (i, j). Invalid indices yield ErrOutOfRange.
	Set(i, j int, v float64) error

	// Clone returns a deep, independent copy.
	Clone() Matrix
}
