// SPDX-License-Identifier: MIT
// Package matrix: the package-wide sentinel error set.
// Every kernel reports failures through these sentinels so callers can match
// with errors.Is regardless of how many wrapping layers sit in between.
// User-triggered conditions never panic; panics belong to option constructors
// fed programmer errors.

package matrix

import "errors"

// All messages carry the "matrix: " prefix so they grep cleanly out of mixed
// logs. Return the sentinels bare where no context helps; where it does, wrap
// once at the boundary with fmt.Errorf("ctx: %w", ErrX) and let errors.Is do
// the matching.
//
// When several conditions hold at once the validators report the first of:
// shape/index/NaN, then nil operand, then dimension mismatch, then
// singularity.

var (
	// ErrInvalidDimensions rejects non-positive row or column counts.
	// Constructors check before any allocation happens.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange reports a row or column index outside the matrix.
	// At and Set return it rather than panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch reports incompatible operand shapes: Add/Sub on
	// different shapes, Mul with a.Cols != b.Rows, a vector of the wrong
	// length, or a rectangular input to a square-only factorization.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf reports a NaN or ±Inf where only finite values make sense,
	// such as the tolerance arguments of AllClose.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix reports a nil Matrix passed as receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular aborts LU/Solve/Inverse when a pivot falls within the
	// configured tolerance. The default elimination order never swaps rows,
	// so a regular matrix with a zero leading minor trips this too; enable
	// WithPartialPivoting to factor those.
	ErrSingular = errors.New("matrix: singular matrix")
)

// ErrIndexOutOfBounds is the historical name for ErrOutOfRange. The alias
// keeps errors.Is(err, ErrIndexOutOfBounds) true for existing callers.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
