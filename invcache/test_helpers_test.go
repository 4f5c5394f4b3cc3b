// SPDX-License-Identifier: MIT
// Shared helpers for the invcache test suite: matrix builders, a recording
// logger, telemetry collection shorthand, and panic assertions.

package invcache_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcache/invcache"
	"github.com/katalvlaran/matcache/matrix"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// MustDense allocates rows×cols or fails the test.
func MustDense(t testing.TB, rows, cols int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(rows, cols)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}

	return d
}

// NewFilledDense builds rows×cols from vals in row-major order.
func NewFilledDense(t testing.TB, rows, cols int, vals ...float64) *matrix.Dense {
	t.Helper()
	if len(vals) != rows*cols {
		t.Fatalf("NewFilledDense: want %d values, got %d", rows*cols, len(vals))
	}
	d := MustDense(t, rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err := d.Set(i, j, vals[i*cols+j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return d
}

// MustAt reads an element or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandInvertibleDense builds a deterministic strictly diagonally dominant
// n×n matrix; dominance keeps every natural-order pivot away from zero.
func RandInvertibleDense(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	d := MustDense(t, n, n)
	var i, j int // loop iterators
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += float64(n) + 1
			}
			if err := d.Set(i, j, v); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return d
}

// CompareClose asserts a ≈ b within |a-b| ≤ atol + rtol·|b| per element.
func CompareClose(t testing.TB, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("matrices differ beyond rtol=%g atol=%g:\n%v\nvs\n%v", rtol, atol, a, b)
	}
}

// AssertErrorIs asserts errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want errors.Is(err, %v), got: %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics (any message).
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// ExpectPanicMessage ASSERTS that fn() panics with exactly the given message.
// Pairs with the Panic*_TestOnly exports to avoid magic strings.
func ExpectPanicMessage(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic, got nil")
		}
		if msg, ok := r.(string); !ok || msg != want {
			t.Fatalf("panic message: got %v, want %q", r, want)
		}
	}()
	fn()
}

// ---------- Recording logger ----------

// logEntry is one captured logger call.
type logEntry struct {
	level invcache.LogLevel
	msg   string
	kv    []interface{}
}

// recordingLogger captures every call for assertions; all levels enabled.
type recordingLogger struct {
	entries []logEntry
}

func (l *recordingLogger) Debug(msg string, kv ...interface{}) { l.capture(invcache.LogLevelDebug, msg, kv) }
func (l *recordingLogger) Info(msg string, kv ...interface{})  { l.capture(invcache.LogLevelInfo, msg, kv) }
func (l *recordingLogger) Warn(msg string, kv ...interface{})  { l.capture(invcache.LogLevelWarn, msg, kv) }
func (l *recordingLogger) Error(msg string, kv ...interface{}) { l.capture(invcache.LogLevelError, msg, kv) }
func (l *recordingLogger) IsDebugEnabled() bool                { return true }
func (l *recordingLogger) IsInfoEnabled() bool                 { return true }

func (l *recordingLogger) capture(level invcache.LogLevel, msg string, kv []interface{}) {
	l.entries = append(l.entries, logEntry{level: level, msg: msg, kv: kv})
}

// count reports how many captured entries match level and msg.
func (l *recordingLogger) count(level invcache.LogLevel, msg string) int {
	n := 0
	for _, e := range l.entries {
		if e.level == level && e.msg == msg {
			n++
		}
	}

	return n
}

// ---------- Cache construction shorthand ----------

// NewQuietCache builds a cache with logging and telemetry silenced; extra
// options apply on top (last-writer-wins), so tests re-enable selectively.
func NewQuietCache(t testing.TB, m matrix.Matrix, extra ...invcache.Option) *invcache.Cache {
	t.Helper()
	opts := []invcache.Option{
		invcache.WithLogger(&invcache.NoOpLogger{}),
		invcache.WithNoTracing(),
		invcache.WithNoMetrics(),
	}
	opts = append(opts, extra...)

	return invcache.New(m, opts...)
}

// ---------- Telemetry collection shorthand ----------

// collectMetrics drains the manual reader into a ResourceMetrics snapshot.
func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	return rm
}

// findMetric searches for a metric by name; nil when never recorded.
func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for si := range rm.ScopeMetrics {
		ms := rm.ScopeMetrics[si].Metrics
		for mi := range ms {
			if ms[mi].Name == name {
				return &ms[mi]
			}
		}
	}

	return nil
}

// counterValue sums an Int64 counter across data points; 0 when absent.
func counterValue(t *testing.T, rm metricdata.ResourceMetrics, name string) int64 {
	t.Helper()
	found := findMetric(rm, name)
	if found == nil {
		return 0
	}
	sum, ok := found.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("%s: want Sum[int64], got %T", name, found.Data)
	}
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}

	return total
}

// histogramCount sums a Float64 histogram's sample counts; 0 when absent.
func histogramCount(t *testing.T, rm metricdata.ResourceMetrics, name string) uint64 {
	t.Helper()
	found := findMetric(rm, name)
	if found == nil {
		return 0
	}
	hist, ok := found.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatalf("%s: want Histogram[float64], got %T", name, found.Data)
	}
	var total uint64
	for _, dp := range hist.DataPoints {
		total += dp.Count
	}

	return total
}
