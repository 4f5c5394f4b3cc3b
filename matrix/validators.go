// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Keep every nil/shape guard in one place so kernels stay minimal.
//   - Return plain sentinels wrapped with the validator's name; facades add
//     their operation tag on top.
//
// Determinism & Performance:
//   - All checks are pure O(1) comparisons and allocate only on failure.
//
// AI-Hints:
//   - ValidateSquareNonNil guards factorizations, ValidateSolveCompatible
//     guards linear systems, ValidateVecLen guards MatVec-like calls.
//   - Composites run their parts in a fixed order (NotNil first), so the
//     first violation decides the sentinel you observe.

package matrix

// ValidateNotNil ensures the matrix reference is non-nil.
// Errors: ErrNilMatrix. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b share both dimensions.
// Assumes non-nil operands; pair with ValidateNotNil when in doubt.
// Errors: ErrDimensionMismatch tagged with the offending axis. Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return matrixErrorf("ValidateSameShape: rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return matrixErrorf("ValidateSameShape: cols", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures Rows == Cols. Assumes m is non-nil.
// Errors: ErrDimensionMismatch. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return matrixErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has exactly n elements.
// A nil vector reports ErrNilMatrix (the package-wide nil-argument sentinel);
// a wrong length reports ErrDimensionMismatch. Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return matrixErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return matrixErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape composes NotNil(a) → NotNil(b) → SameShape(a, b).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	const tag = "ValidateBinarySameShape"
	if err := ValidateNotNil(a); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(tag, err)
	}

	return nil
}

// ValidateSquareNonNil composes NotNil → Square.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	const tag = "ValidateSquareNonNil"
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(tag, err)
	}

	return nil
}

// ValidateMulCompatible ensures non-nil operands with a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	const tag = "ValidateMulCompatible"
	if err := ValidateNotNil(a); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return matrixErrorf(tag, err)
	}
	if a.Cols() != b.Rows() {
		return matrixErrorf(tag, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSolveCompatible guards linear systems a·x = b: a square and
// non-nil, b non-nil with a matching row count. The column count of b is
// unconstrained; every column is an independent right-hand side.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateSolveCompatible(a, b Matrix) error {
	const tag = "ValidateSolveCompatible"
	if err := ValidateSquareNonNil(a); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return matrixErrorf(tag, err)
	}
	if a.Rows() != b.Rows() {
		return matrixErrorf(tag, ErrDimensionMismatch)
	}

	return nil
}
