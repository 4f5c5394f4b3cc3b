// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Offer intention-revealing entry points that map 1:1 onto the kernels.
//   - Hold zero logic of their own: construction helpers compose NewDense,
//     aliases forward verbatim, and numeric validation stays in the kernels.
//
// Determinism & Policy:
//   - No facade alters loop order, allocation pattern or numeric policy.
//   - Solver options flow through the aliases untouched.
//
// AI-Hints:
//   - Prefer *Dense arguments to unlock the flat fast paths downstream.
//   - NewZeros/NewIdentity/ZerosLike/IdentityLike cover the usual staging
//     buffers; reach for them before hand-rolling Set loops.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a zero-initialized *Dense of size rows×cols.
// Alias of NewDense under an intention-revealing name; the runtime's zeroing
// of the fresh slice is the only work done.
// Errors: ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n, the n×n matrix with ones on the diagonal.
// The diagonal is written straight into the backing slice after construction.
// Errors: ErrInvalidDimensions (n <= 0). Complexity: O(n^2).
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0 // diagonal writes; everything else stays zero
	}

	return I, nil
}

// CloneMatrix returns a deep copy of m through its own Clone method.
// Dense in, Dense out; foreign implementations decide their own copy type.
// m must be non-nil.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike allocates a zero *Dense with the same shape as m.
// Handy for staging buffers next to an existing operand.
// Errors: ErrNilMatrix, ErrInvalidDimensions.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns the identity with dimension Rows(m); m must be square.
// Errors: ErrNilMatrix, ErrDimensionMismatch wrapped with the facade tag.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Linear Algebra (aliases map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b. Complexity: O(rc).
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b. Complexity: O(rc).
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b. Complexity: O(r*n*c).
//
// AI-Hints: Dense operands keep the product on the row-streaming fast path.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ. Complexity: O(rc).
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m. Complexity: O(rc).
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }

// MatVecMul is an alias for MatVec: y = m·x. Complexity: O(rc).
//
// AI-Hints: For repeated products of one shape, reuse the x slice across calls.
func MatVecMul(m Matrix, x []float64) ([]float64, error) { return MatVec(m, x) }

// InverseOf is an alias for Inverse: A⁻¹ under the given solver options.
// Complexity: O(n^3).
func InverseOf(m Matrix, opts ...Option) (Matrix, error) { return Inverse(m, opts...) }

// LUDecompose is an alias for LU: Doolittle factors in natural row order.
// Complexity: O(n^3).
func LUDecompose(m Matrix) (Matrix, Matrix, error) { return LU(m) }

// PLUDecompose is an alias for PLU: returns (L, U, perm) with P·A = L·U.
// Complexity: O(n^3).
func PLUDecompose(m Matrix, opts ...Option) (Matrix, Matrix, []int, error) { return PLU(m, opts...) }
