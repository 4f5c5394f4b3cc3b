// SPDX-License-Identifier: MIT
// Package matrix: the element-wise and product kernels that work on any
// Matrix implementation. Addition, subtraction, multiplication, transpose,
// scalar scaling and matrix-vector products all live here; factorization and
// solving sit in solve.go.
//
// Every kernel validates its operands up front through validators.go, wraps
// failures with matrixErrorf, and walks elements in a fixed order on both the
// contiguous *Dense path and the At/Set fallback, so repeated runs over the
// same inputs are bit-identical.

package matrix

import "fmt"

// ZeroSum is the initial sum value for accumulation loops and substitution passes.
const ZeroSum = 0.0

// Operation tags for error wrapping. One constant per public kernel keeps
// wrapped messages greppable and typo-proof.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opPLU       = "PLU"
	opSolve     = "Solve"
	opInverse   = "Inverse"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag so failures read "Op: cause"
// while errors.Is/errors.As still reach the underlying sentinel.
// Call only with a non-nil err; wrapping nil would manufacture an error.
//
// Complexity: Time O(1), Space O(1).
//
// AI-Hints:
//   - Gate every call with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Stick to the op* constants for tags to keep log greps single-pattern.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// accessErrorf tags an At/Set failure with the element position before the
// operation wrapper is applied. Fallback loops funnel every element error
// through here so all kernels report access failures in one shape.
func accessErrorf(op, call string, i, j int, err error) error {
	return matrixErrorf(op, fmt.Errorf("%s(%d,%d): %w", call, i, j, err))
}

// addSigned computes out = a + sign*b element-wise for sign in {+1, -1}.
// Shapes must match exactly. The result is a fresh Dense; operands are left
// intact. Shared backend for Add and Sub so validation, allocation and the
// fast path live in one place.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b), then allocate the result.
//   - Stage 2: when both operands expose flat storage, run one pass over the
//     backing slices; otherwise fall back to At/Set in row-major order.
//
// Inputs:
//   - a, b: conformable matrices (non-nil, same rows/cols).
//   - sign: +1 selects addition, -1 subtraction (enforced by the two facades).
//   - op:   opAdd or opSub, used for error wrapping.
//
// Returns:
//   - Matrix: newly allocated Dense holding the combination.
//   - error:  ErrNilMatrix or ErrDimensionMismatch wrapped with op.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result.
//
// Notes:
//   - Carrying sign as a float64 keeps the hot loop branch-free.
func addSigned(a, b Matrix, sign float64, op string) (Matrix, error) {
	// Shapes first; everything below assumes conformable operands.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	// Fast path: both backing slices are contiguous, a single flat pass suffices.
	if fa, okA := flat(a); okA {
		if fb, okB := flat(b); okB {
			for idx := range res.data {
				res.data[idx] = fa[idx] + sign*fb[idx]
			}

			return res, nil
		}
	}

	// Fallback: row-major At/Set walk for foreign implementations.
	var (
		i, j   int     // row-major cursors
		av, bv float64 // element temporaries
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, accessErrorf(op, "At", i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, accessErrorf(op, "At", i, j, err)
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, accessErrorf(op, "Set", i, j, err)
			}
		}
	}

	return res, nil
}

// Add returns the element-wise sum C = A + B as a fresh Dense.
// Operands must be non-nil and share a shape; neither is mutated.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c); the fast path is bandwidth-bound.
//
// AI-Hints:
//   - Pass *Dense operands to stay on the flat loop; wrap a value behind the
//     interface when you deliberately want the fallback exercised.
func Add(a, b Matrix) (Matrix, error) { return addSigned(a, b, +1, opAdd) }

// Sub returns the element-wise difference C = A - B as a fresh Dense.
// Mirror of Add with sign -1; see addSigned for the shared contract.
func Sub(a, b Matrix) (Matrix, error) { return addSigned(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil operands, A.Cols == B.Rows),
//     then allocate C zeroed.
//   - Stage 2: Dense×Dense runs i→k→j over row subslices, accumulating row k
//     of B into row i of C and skipping zero A[i,k]; the fallback runs i→j→k
//     with a scalar accumulator per cell.
//
// Inputs:
//   - a: left matrix, shape (r × n).
//   - b: right matrix, shape (n × c).
//
// Returns:
//   - Matrix: freshly allocated product of shape (r × c).
//   - error:  ErrNilMatrix or ErrDimensionMismatch wrapped with opMul.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - The i→k→j order streams rows of B and C sequentially, which is the
//     cache-friendly choice for row-major storage.
func Mul(a, b Matrix) (Matrix, error) {
	// Inner dimensions must agree before any allocation happens.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int     // cursors shared by both paths
		av, bv  float64 // element temporaries
	)

	// Fast path: row subslices keep all three operands on flat storage.
	if fa, okA := flat(a); okA {
		if fb, okB := flat(b); okB {
			var rowR, rowB []float64
			for i = 0; i < aRows; i++ {
				rowR = res.data[i*bCols : (i+1)*bCols]
				for k = 0; k < aCols; k++ {
					if av = fa[i*aCols+k]; av == 0 {
						continue // nothing to accumulate from this k
					}
					rowB = fb[k*bCols : (k+1)*bCols]
					for j = range rowB {
						rowR[j] += av * rowB[j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: per-cell dot products through the interface.
	var acc float64
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, accessErrorf(opMul, "At", i, k, err)
				}
				if av == 0 {
					continue // skip the read of b entirely
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, accessErrorf(opMul, "At", k, j, err)
				}
				acc += av * bv
			}
			if err = res.Set(i, j, acc); err != nil {
				return nil, accessErrorf(opMul, "Set", i, j, err)
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a fresh Dense; m itself is never mutated.
// The fast path walks the destination row-major, gathering strided reads from
// the source; the fallback reads the source row-major and writes transposed.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - For a one-off Aᵀ·x prefer MatVec with swapped indexing over forming Aᵀ.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims swap
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int

	// Fast path: row i of the result gathers column i of the source.
	if fm, ok := flat(m); ok {
		var rowR []float64
		for i = 0; i < cols; i++ { // the result has cols rows
			rowR = res.data[i*rows : (i+1)*rows]
			for j = 0; j < rows; j++ {
				rowR[j] = fm[j*cols+i]
			}
		}

		return res, nil
	}

	// Fallback: generic interface walk.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, accessErrorf(opTranspose, "At", i, j, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, accessErrorf(opTranspose, "Set", j, i, err)
			}
		}
	}

	return res, nil
}

// Scale returns alpha*m as a fresh Dense; m is never mutated.
// alpha = 0 produces an explicit zero matrix of the same shape; a NaN or Inf
// alpha propagates into every element under the usual IEEE rules.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast path: one range pass over the backing slice.
	if fm, ok := flat(m); ok {
		for idx, v := range fm {
			res.data[idx] = v * alpha
		}

		return res, nil
	}

	// Fallback: At/Set walk in row-major order.
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, accessErrorf(opScale, "At", i, j, err)
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, accessErrorf(opScale, "Set", i, j, err)
			}
		}
	}

	return res, nil
}

// MatVec computes the product y = m·x for a column vector x given as a slice.
//
// Contract: m non-nil, x non-nil, len(x) == m.Cols(). The result is a fresh
// slice of length m.Rows(); neither input is modified. Zero entries of x are
// skipped on both paths, so a coefficient paired with x[j] == 0 is never read
// into the accumulation.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r).
//
// AI-Hints:
//   - The accumulator is reset for every row; stale-sum bugs show up as each
//     y[i] absorbing the rows above it, which the tests pin against.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var (
		i, j int
		acc  float64 // per-row accumulator
	)

	// Fast path: one row subslice per output element.
	if fm, ok := flat(m); ok {
		var row []float64
		for i = 0; i < rows; i++ {
			row = fm[i*cols : (i+1)*cols]
			acc = ZeroSum // fresh accumulator per row
			for j = range row {
				if xv := x[j]; xv != 0 {
					acc += row[j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface reads with the same zero-skip policy.
	var (
		mv  float64
		err error
	)
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if x[j] == 0 {
				continue
			}
			if mv, err = m.At(i, j); err != nil {
				return nil, accessErrorf(opMatVec, "At", i, j, err)
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
