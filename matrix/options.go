// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the linear-solver numeric
// policy. Everything configurable lives here:
//   - the Option func type and its unexported Options carrier,
//   - one exported Default* constant per knob,
//   - WithX constructors that reject nonsense by panicking,
//   - gatherOptions/finalizeOptions, the only resolution path.
//
// Ground rules:
//   - Resolution is pure: the same option list always yields the same Options.
//   - Every knob steers a real branch in solve.go; none exist for show.
//   - Bad arguments fail loudly at construction instead of quietly skewing
//     numeric results later.
//
// Pivot policy (LU/PLU/Solve/Inverse):
//   - pivotTol is the rejection threshold: |pivot| <= pivotTol aborts with
//     ErrSingular. The zero default keeps results bit-identical to the plain
//     Doolittle scheme; raise it to reject ill-conditioned pivots.
//   - partialPivot selects row-swapping elimination (PA = LU). Off, the
//     factorization runs in natural row order and fails on any zero pivot
//     even for perfectly invertible inputs (e.g. [[0,1],[1,0]]).
//   - Tolerances are absolute magnitudes, not relative to matrix scale.
package matrix

import "math"

// ---------- Documented defaults ----------

const (
	// DefaultEpsilon is the tolerance recommended for approximate
	// comparisons (see AllClose). Not a solver knob.
	DefaultEpsilon = 1e-9

	// DefaultPivotTolerance is the pivot-rejection threshold for LU-based
	// routines. Zero means only an exactly zero pivot aborts factorization.
	DefaultPivotTolerance = 0.0

	// DefaultPartialPivoting controls row swapping during elimination.
	// false keeps the plain Doolittle order (no permutation).
	DefaultPartialPivoting = false
)

// Panic messages, reachable from tests through the white-box bridge.
const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// ---------- Option type ----------

// Option mutates internal options. Applying the same Option twice is safe.
type Option func(*Options)

// Options holds the effective solver configuration after option resolution.
// Fields stay unexported; public entry points accept ...Option and resolve
// them through gatherOptions.
type Options struct {
	pivotTol     float64 // >= 0; DefaultPivotTolerance
	partialPivot bool    // DefaultPartialPivoting
}

// ---------- WithX constructors ----------

// WithPivotTolerance sets the pivot-rejection threshold for LU-based routines.
// During factorization |pivot| <= tol aborts with ErrSingular, so tol = 0
// (the default) rejects only exactly-zero pivots, while a small positive value
// (say 1e-12) classifies near-singular systems as singular instead of
// amplifying rounding noise into the result.
//
// Panics with a stable message when tol is negative, NaN or Inf; an invalid
// threshold is a programmer error, not a runtime condition.
//
// AI-Hints:
//   - Combine with WithPartialPivoting so a small pivot triggers a row swap
//     before the threshold is consulted.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithPartialPivoting enables row-swapping elimination (PA = LU): each step
// brings the row with the largest |pivot| into position, ties keeping the
// lowest index. Required for regular matrices that the natural order rejects,
// such as permutation matrices.
//
// LU (the fixed two-factor form) ignores this flag; it matters for PLU,
// Solve and Inverse.
func WithPartialPivoting() Option {
	return func(o *Options) { o.partialPivot = true }
}

// WithNoPartialPivoting restores the default natural-order elimination.
func WithNoPartialPivoting() Option {
	return func(o *Options) { o.partialPivot = false }
}

// ---------- Option resolution ----------

// NewSolveOptions resolves setters against the documented defaults and
// returns the effective configuration. Pure; last writer wins.
//
// AI-Hints:
//   - Useful for forwarding one pre-resolved policy through several calls.
func NewSolveOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults, normalized.
// Keep the field list in sync with the Default* constants above.
func defaultOptions() Options {
	o := Options{
		pivotTol:     DefaultPivotTolerance,
		partialPivot: DefaultPartialPivoting,
	}
	finalizeOptions(&o)

	return o
}

// gatherOptions starts from defaults, applies setters in order and finalizes
// derived invariants. Canonical entry for every ...Option consumer in the
// package.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o) // last writer wins
	}
	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place, after all
// setters ran. Pivot rejection compares absolute magnitudes, so a negative
// tolerance folds to its magnitude here even though WithPivotTolerance never
// lets one through.
func finalizeOptions(o *Options) {
	if o.pivotTol < 0 {
		o.pivotTol = -o.pivotTol
	}
}
