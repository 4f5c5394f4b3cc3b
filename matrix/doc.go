// Package matrix offers dense float64 matrices and LU-based linear solvers.
//
// Shipped in this package:
//
//   - Dense, a row-major Matrix implementation with O(1) element access and
//     flat-slice fast paths in every kernel.
//   - Element-wise and structural kernels (Add, Sub, Mul, Transpose, Scale,
//     MatVec, AllClose) with strict fail-fast validation.
//   - Factorizations LU (Doolittle, natural order) and PLU (partial pivoting),
//     plus Solve/Inverse built on triangular substitution.
//   - Functional solver options (WithPartialPivoting, WithPivotTolerance)
//     resolved against documented defaults.
//
// All routines are deterministic: fixed loop orders, no global state, and
// identical inputs produce identical outputs. Dense storage is best for small
// to medium systems where O(n²) memory is acceptable.
//
// See the examples in this package and invcache for usage patterns.
package matrix
