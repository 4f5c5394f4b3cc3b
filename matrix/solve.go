// SPDX-License-Identifier: MIT
// Package matrix: LU-based factorization and linear-system solving.
//
// Purpose:
//  - Factor square systems (LU without pivoting, PLU with row pivoting).
//  - Solve A·X = B for one or many right-hand sides via triangular substitution.
//  - Derive matrix inverses as the special case B = identity.
//
// Notes:
//  - The pivoting policy and the pivot-rejection threshold come from options.go
//    (WithPartialPivoting, WithPivotTolerance); defaults reproduce the plain
//    Doolittle scheme with exact-zero rejection.
//  - Internal factor helpers return plain errors; public facades wrap them
//    with canonical operation tags via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// readSquare returns the elements of the n×n matrix m in row-major order.
// The *Dense backing slice is handed out directly and must be treated as
// read-only; other implementations are copied out through At.
func readSquare(m Matrix, n int) ([]float64, error) {
	if fm, ok := flat(m); ok {
		return fm, nil
	}

	out := make([]float64, n*n)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out[i*n+j] = v
		}
	}

	return out, nil
}

// doolittleFactor runs Doolittle elimination in natural row order: no row
// exchanges, unit diagonal on the lower factor. Any running pivot with
// magnitude at or below tol aborts with ErrSingular. Both factors are fresh
// allocations; m is never written.
func doolittleFactor(m Matrix, tol float64) (*Dense, *Dense, error) {
	n := m.Rows()
	lo, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	up, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}

	src, err := readSquare(m, n)
	if err != nil {
		return nil, nil, err
	}

	var (
		i, j, k      int
		sum, pivot   float64
		baseI, baseJ int
	)
	for i = 0; i < n; i++ {
		lo.data[i*n+i] = 1.0 // unit diagonal
	}

	for i = 0; i < n; i++ {
		baseI = i * n
		// Row i of up: up[i,j] = src[i,j] − Σ_{k<i} lo[i,k]·up[k,j].
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += lo.data[baseI+k] * up.data[k*n+j]
			}
			up.data[baseI+j] = src[baseI+j] - sum
		}

		// The diagonal entry just produced divides everything below it.
		pivot = up.data[baseI+i]
		if math.Abs(pivot) <= tol {
			return nil, nil, ErrSingular
		}

		// Column i of lo: lo[j,i] = (src[j,i] − Σ_{k<i} lo[j,k]·up[k,i]) / pivot.
		for j = i + 1; j < n; j++ {
			baseJ = j * n
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += lo.data[baseJ+k] * up.data[k*n+i]
			}
			lo.data[baseJ+i] = (src[baseJ+i] - sum) / pivot
		}
	}

	return lo, up, nil
}

// swapRowSegment exchanges columns [lo, hi) of rows a and b inside d.
func swapRowSegment(d *Dense, a, b, lo, hi int) {
	baseA, baseB := a*d.c, b*d.c
	for j := lo; j < hi; j++ {
		d.data[baseA+j], d.data[baseB+j] = d.data[baseB+j], d.data[baseA+j]
	}
}

// pivotedFactor computes P*A = L*U by Gaussian elimination with partial
// pivoting. perm encodes P: row i of the permuted system is source row perm[i].
// A pivot with |U[k,k]| ≤ tol after row selection aborts with ErrSingular.
// Time O(n^3), Space O(n^2). Ties in pivot magnitude keep the lowest row
// index, so identical inputs always yield identical permutations.
func pivotedFactor(m Matrix, tol float64) (*Dense, *Dense, []int, error) {
	n := m.Rows()
	lo, err := NewDense(n, n)
	if err != nil {
		return nil, nil, nil, err
	}
	up, err := NewDense(n, n)
	if err != nil {
		return nil, nil, nil, err
	}
	perm := make([]int, n)
	for i := 0; i < n; i++ {
		perm[i] = i // identity permutation until swaps happen
	}

	// up doubles as the elimination workspace, so it gets its own copy of m.
	if fm, ok := flat(m); ok {
		copy(up.data, fm)
	} else {
		var i, j int
		var v float64
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return nil, nil, nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
				}
				up.data[i*n+j] = v
			}
		}
	}

	// Eliminate column by column with row selection.
	var (
		i, j, k, r    int     // cursors and selected pivot row
		best, mag     float64 // running maximum of |candidate pivot|
		pivot, factor float64 // selected pivot and elimination multiplier
		baseK, baseI  int     // flat row offsets
	)
	for k = 0; k < n; k++ {
		// Select the row r in [k, n) maximizing |U[r,k]|.
		baseK = k * n
		r, best = k, math.Abs(up.data[baseK+k])
		for i = k + 1; i < n; i++ {
			mag = math.Abs(up.data[i*n+k])
			if mag > best { // strict > keeps the lowest index on ties
				best, r = mag, i
			}
		}
		// Swap rows k and r: the active part of U, the computed multiplier
		// prefix of L, and the permutation bookkeeping.
		if r != k {
			swapRowSegment(up, k, r, k, n)
			swapRowSegment(lo, k, r, 0, k)
			perm[k], perm[r] = perm[r], perm[k]
		}
		// Reject pivots at or below the tolerance.
		pivot = up.data[baseK+k]
		if math.Abs(pivot) <= tol {
			return nil, nil, nil, ErrSingular
		}
		// Eliminate entries below the pivot.
		for i = k + 1; i < n; i++ {
			baseI = i * n
			factor = up.data[baseI+k] / pivot
			if factor == 0 {
				continue // nothing to eliminate; L entry stays 0
			}
			lo.data[baseI+k] = factor
			up.data[baseI+k] = 0 // exact zero below the pivot
			for j = k + 1; j < n; j++ {
				up.data[baseI+j] -= factor * up.data[baseK+j]
			}
		}
	}

	// Unit diagonal of L.
	for i = 0; i < n; i++ {
		lo.data[i*n+i] = 1.0
	}

	return lo, up, perm, nil
}

// LU computes the Doolittle factorization A = L*U (unit diagonal on L, no
// row exchanges).
// Implementation:
//   - Stage 1: Validate m (non-nil, square).
//   - Stage 2: Delegate to the shared Doolittle kernel with the exact-zero
//     pivot threshold; it fills U a row and L a column at a time.
//
// Behavior highlights:
//   - Natural row order end to end: the rows eliminate in the order given,
//     which makes the factors reproducible bit for bit.
//
// Inputs:
//   - m: square matrix to factor; read-only.
//
// Returns:
//   - Matrix: unit lower-triangular factor.
//   - Matrix: upper-triangular factor carrying the pivots on its diagonal.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shape screening).
//   - ErrSingular when a running diagonal pivot is exactly zero.
//
// Determinism:
//   - No row selection happens, so the factor layout depends only on the
//     input values.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the two factors.
//
// Notes:
//   - A zero on the running diagonal fails even for invertible inputs; use
//     PLU when the row order of the input is not under your control.
//
// AI-Hints:
//   - Reach for LU when inputs are diagonally dominant or preconditioned;
//     anything less tame belongs on PLU's row-swapping path.
func LU(m Matrix) (Matrix, Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Exact-zero rejection is the documented default of the plain scheme.
	lo, up, err := doolittleFactor(m, DefaultPivotTolerance)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	return lo, up, nil
}

// PLU computes the row-pivoted factorization P*A = L*U.
// Implementation:
//   - Stage 1: Validate m (non-nil, square); resolve options (pivot tolerance).
//   - Stage 2: Gaussian elimination with partial pivoting; L unit lower, U upper.
//
// Behavior highlights:
//   - Row selection maximizes |pivot| at each step; ties keep the lowest index.
//   - Solves orderings the natural-order scheme rejects (zeros on the diagonal).
//
// Inputs:
//   - m: square matrix to factor; read-only.
//   - opts: WithPivotTolerance is honored; the pivoting flag is implied.
//
// Returns:
//   - Matrix: unit lower-triangular factor of the permuted system.
//   - Matrix: upper-triangular factor of the permuted system.
//   - []int : perm; row i of P*A is source row perm[i] of A.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shape screening).
//   - ErrSingular when the best available |pivot| sits at or below tolerance.
//
// Determinism:
//   - Fixed k→i→j elimination order and deterministic tie-breaking.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) plus O(n) for perm.
//
// AI-Hints:
//   - Reconstruct P*A by reading rows of A in perm order; A = Pᵀ*L*U.
//   - A singular verdict here means the column had no usable pivot at all,
//     not merely an unlucky row order.
func PLU(m Matrix, opts ...Option) (Matrix, Matrix, []int, error) {
	// Resolve the numeric policy (pivot tolerance).
	o := gatherOptions(opts...)

	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opPLU, err)
	}

	lo, up, perm, err := pivotedFactor(m, o.pivotTol)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opPLU, err)
	}

	return lo, up, perm, nil
}

// Solve computes X such that A·X = B using an LU-based direct method.
// Implementation:
//   - Stage 1: Resolve options; validate A square and B conformable. A nil B
//     selects the implicit identity RHS, making X the inverse of A.
//   - Stage 2: Factor A (Doolittle by default, PLU under WithPartialPivoting).
//   - Stage 3: For each RHS column: forward solve L*y = (P*B)[:,col], backward
//     solve U*x = y, write x into column col of the result.
//
// Behavior highlights:
//   - Column-major outer walk with fixed substitution orders, so repeated
//     runs reproduce exactly.
//   - One factorization serves every RHS column; inputs are never mutated.
//   - The identity RHS is synthesized on the fly; no n×n B is materialized.
//
// Inputs:
//   - a: non-nil square matrix (n×n).
//   - b: RHS matrix (n×m) or nil for the identity (then X = A⁻¹).
//   - opts: WithPartialPivoting, WithPivotTolerance (see options.go).
//
// Returns:
//   - Matrix: Dense(n×m) with the solution columns (n×n when b is nil).
//   - error : validation/factorization failures wrapped with opSolve.
//
// Errors:
//   - ErrNilMatrix         (nil a).
//   - ErrDimensionMismatch (a not square, or b.Rows != a.Rows).
//   - ErrSingular          (rejected pivot during factorization).
//
// Determinism:
//   - Identical inputs and options yield identical results, including the
//     choice of pivot rows.
//
// Complexity:
//   - Time O(n^3 + n^2·m), Space O(n^2) for the factors plus the result.
//
// Notes:
//   - Solving with an explicit b is cheaper and more accurate than forming
//     the inverse and multiplying; prefer it when the inverse itself is not
//     the quantity of interest.
//
// AI-Hints:
//   - Keep a and b as *Dense to stay on flat-indexed paths end to end.
//   - Enable WithPartialPivoting for arbitrary input data; the default order
//     fails on benign systems like [[0,1],[1,0]].
func Solve(a, b Matrix, opts ...Option) (Matrix, error) {
	// Resolve the numeric policy first; option constructors have already
	// rejected nonsensical values.
	o := gatherOptions(opts...)

	// Validate the system shape. A nil b selects the identity RHS.
	if b == nil {
		if err := ValidateSquareNonNil(a); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
	} else {
		if err := ValidateSolveCompatible(a, b); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
	}

	// Factor A according to the pivoting policy.
	n := a.Rows()
	var (
		lo, up *Dense
		perm   []int
		err    error
	)
	if o.partialPivot {
		lo, up, perm, err = pivotedFactor(a, o.pivotTol)
	} else {
		lo, up, err = doolittleFactor(a, o.pivotTol)
	}
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Result shape: n×n for the identity RHS, n×b.Cols() otherwise.
	rhsCols := n
	if b != nil {
		rhsCols = b.Cols()
	}
	res, err := NewDense(n, rhsCols)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Flat fast-path for reading b (nil b never matches).
	fb, bFast := flat(b)

	var (
		col, i, k      int     // substitution cursors
		srcRow         int     // permuted source row of b
		sum, rhs       float64 // substitution accumulator and RHS element
		baseLi, baseUi int     // flat row offsets
		bCols          int
		y              = make([]float64, n) // L*y = rhs intermediate, reused per column
		x              = make([]float64, n) // solved column before the result write
	)
	if bFast {
		bCols = b.Cols()
	}
	for col = 0; col < rhsCols; col++ {
		// Forward substitution: L*y = (P*b)[:,col].
		for i = 0; i < n; i++ {
			sum = ZeroSum
			baseLi = i * n
			for k = 0; k < i; k++ {
				sum += lo.data[baseLi+k] * y[k]
			}
			// Row i of the permuted system reads source row perm[i].
			srcRow = i
			if perm != nil {
				srcRow = perm[i]
			}
			if b == nil {
				// Canonical basis column e_col of the implicit identity RHS.
				if srcRow == col {
					y[i] = 1.0 - sum
				} else {
					y[i] = -sum
				}
				continue
			}
			if bFast {
				rhs = fb[srcRow*bCols+col]
			} else {
				rhs, err = b.At(srcRow, col)
				if err != nil {
					return nil, matrixErrorf(opSolve, fmt.Errorf("At(%d,%d): %w", srcRow, col, err))
				}
			}
			y[i] = rhs - sum
		}
		// Backward substitution: U*x = y. Every pivot passed the factorization
		// guard, so the division is safe here.
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			baseUi = i * n
			for k = i + 1; k < n; k++ {
				sum += up.data[baseUi+k] * x[k]
			}
			x[i] = (y[i] - sum) / up.data[baseUi+i]
		}
		// Write x into column col of the result.
		for i = 0; i < n; i++ {
			res.data[i*rhsCols+col] = x[i]
		}
	}

	return res, nil
}

// Inverse computes A⁻¹ as Solve(A, nil) under the same options.
//
// Errors carry the opInverse tag over the underlying Solve failure; the usual
// sentinels (ErrNilMatrix, ErrDimensionMismatch, ErrSingular) match errors.Is.
// Complexity: Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - If you only need A⁻¹*b, call Solve(a, b) directly; forming the full
//     inverse is the more expensive and less accurate route.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	inv, err := Solve(m, nil, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
