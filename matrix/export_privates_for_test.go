// SPDX-License-Identifier: MIT

package matrix

// White-box bridge for matrix_test.
//
// The external test package cannot reach unexported symbols, yet some checks
// only make sense against the raw kernels: feeding doolittleFactor an explicit
// tolerance, or asserting what gatherOptions actually resolved. This file
// compiles into package matrix (the _test.go suffix keeps it out of production
// builds) and re-exports exactly that surface under *_TestOnly names.
//
// Keep OptionsSnapshot aligned with the Options field list; snapshotOf is the
// single place that copies between them, so drift shows up there first.

// Panic message mirror so tests need no magic strings.
const (
	PanicPivotToleranceInvalid_TestOnly = panicPivotToleranceInvalid
)

// ---------- Factorization kernels ----------

// DoolittleFactor_TestOnly hands m and tol straight to doolittleFactor.
// Errors come back as the bare sentinels the kernel reports to the public
// facades; nothing is wrapped on the way out.
func DoolittleFactor_TestOnly(m Matrix, tol float64) (*Dense, *Dense, error) {
	return doolittleFactor(m, tol)
}

// PivotedFactor_TestOnly hands m and tol straight to pivotedFactor.
func PivotedFactor_TestOnly(m Matrix, tol float64) (*Dense, *Dense, []int, error) {
	return pivotedFactor(m, tol)
}

// ---------- Options resolution ----------

// OptionsSnapshot is a read-only copy of the resolved Options fields, letting
// tests assert defaults and last-writer-wins ordering without touching
// unexported state.
type OptionsSnapshot struct {
	PivotTol     float64
	PartialPivot bool
}

// NewSolveOptionsSnapshot_TestOnly resolves opts through the public
// NewSolveOptions path and snapshots the result.
func NewSolveOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := NewSolveOptions(opts...)

	return snapshotOf(o)
}

// GatherOptionsSnapshot_TestOnly resolves opts through the internal
// gatherOptions path and snapshots the result. Both paths must agree; the
// options tests compare them.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return snapshotOf(o)
}

// snapshotOf copies the internal fields into the public snapshot struct.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		PivotTol:     o.pivotTol,
		PartialPivot: o.partialPivot,
	}
}
