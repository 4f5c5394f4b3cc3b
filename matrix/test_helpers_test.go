// SPDX-License-Identifier: MIT

// Package matrix_test: shared fixtures and assertion helpers for the matrix
// test suite. Helpers fail the calling test on any setup error, so the tests
// themselves read as straight-line scenarios.
//
// Naming:
//   - Must* builds or mutates and fails the test on error.
//   - Compare* asserts element-wise agreement, exact or banded.
//   - opaque strips the *Dense concrete type to force interface fallbacks.
package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcache/matrix"
)

// opaque wraps a Matrix so type assertions on *Dense fail and kernels take
// their At/Set fallback paths.
type opaque struct{ matrix.Matrix }

// MustDense allocates an r-by-c Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d) failed: %v", r, c, err)
	}

	return m
}

// IdentityDense allocates an n-by-n identity or fails the test.
func IdentityDense(t *testing.T, n int) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d) failed: %v", n, err)
	}

	return m
}

// NewFilledDense builds an r-by-c Dense from vals laid out row-major.
// The length of vals must be exactly r*c.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("fill length %d does not cover %dx%d", len(vals), r, c)
	}
	d := MustDense(t, r, c)
	for idx, v := range vals {
		MustSet(t, d, idx/c, idx%c, v)
	}

	return d
}

// RandomFill loads m with U(-1,1) values from a seeded source. Same seed,
// same matrix.
func RandomFill(t *testing.T, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			MustSet(t, m, i, j, 2*rng.Float64()-1)
		}
	}
}

// RandFilledDense allocates an r-by-c Dense and gives it a seeded fill.
func RandFilledDense(t *testing.T, r, c int, seed int64) matrix.Matrix {
	t.Helper()
	m := MustDense(t, r, c)
	RandomFill(t, m, seed)

	return m
}

// MustSet writes one element or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("writing (%d,%d)=%v failed: %v", i, j, v, err)
	}
}

// MustAt reads one element or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("reading (%d,%d) failed: %v", i, j, err)
	}

	return v
}

// CompareExact asserts m equals want cell for cell under ==. Use only with
// values that arithmetic reproduces exactly.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if m.Rows() != len(want) {
		t.Fatalf("row count: got %d, want %d", m.Rows(), len(want))
	}
	var v float64
	for i := range want {
		if m.Cols() != len(want[i]) {
			t.Fatalf("col count at row %d: got %d, want %d", i, m.Cols(), len(want[i]))
		}
		for j := range want[i] {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("cell (%d,%d): got %g, want %g", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose asserts a ≈ b within the AllClose band.
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose failed: %v", err)
	}
	if !ok {
		t.Fatalf("matrices differ beyond rtol=%g atol=%g:\n%v\nvs\n%v", rtol, atol, a, b)
	}
}

// sliceClose asserts two vectors agree within |a[i]-b[i]| <= atol + rtol*|b[i]|.
func sliceClose(t *testing.T, a, b []float64, rtol, atol float64) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("vector lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > atol+rtol*math.Abs(b[i]) {
			t.Fatalf("element %d: got %g, want %g (rtol=%g atol=%g)", i, a[i], b[i], rtol, atol)
		}
	}
}

// AssertErrorIs asserts errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error mismatch: want %v, got %v", target, err)
	}
}

// ExpectPanic asserts fn panics with any value.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("call returned without panicking")
		}
	}()
	fn()
}

// ExpectPanicMessage asserts fn panics with exactly msg.
func ExpectPanicMessage(t *testing.T, msg string, fn func()) {
	t.Helper()
	defer func() {
		got := recover()
		if got == nil {
			t.Fatalf("call returned without panicking")
		}
		if s, ok := got.(string); !ok || s != msg {
			t.Fatalf("panic value: got %v, want %q", got, msg)
		}
	}()
	fn()
}

// ---------- Benchmark twins ----------

// mustDense is MustDense for benchmarks.
func mustDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	d, err := matrix.NewZeros(r, c)
	if err != nil {
		b.Fatalf("NewZeros(%d,%d) failed: %v", r, c, err)
	}

	return d
}

// fillDenseRand loads d with seeded U(-1,1) values outside the timed section.
func fillDenseRand(b *testing.B, d *matrix.Dense, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows, cols := d.Rows(), d.Cols()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err := d.Set(i, j, 2*rng.Float64()-1); err != nil {
				b.Fatalf("writing (%d,%d) failed: %v", i, j, err)
			}
		}
	}
}

// onesVec returns an all-ones vector of length n.
func onesVec(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}

	return v
}
