// Package invcache memoizes the inverse of a single matrix.
//
// The invcache package provides:
//
//   - Cache, a single-slot container pairing one data matrix with its
//     (possibly absent) inverse. Absence is expressed through a comma-ok
//     accessor, never through a sentinel value.
//   - New / Store / Data / StoreInverse / Inverse, the explicit accessor
//     surface over the slot. Store unconditionally discards the cached
//     inverse, even when the incoming matrix is numerically identical.
//   - Solve, the memoizing entry point: the first call computes the inverse
//     through matrix.Inverse and remembers it; later calls return the cached
//     value unchanged and announce the hit through the configured Logger.
//   - Functional options (WithLogger, WithTracing, WithMetrics, ...) resolved
//     against documented defaults, plus OpenTelemetry spans and counters
//     around every Solve and Store.
//
// Solver behavior is owned entirely by the matrix package: Solve forwards
// its matrix.Option arguments verbatim and interprets neither them nor the
// solver's errors. A failed inversion leaves the slot untouched, so the next
// call retries instead of serving a poisoned result.
//
// Cache is a single-goroutine structure. Calls never block, hold no locks,
// and perform no I/O beyond logging and telemetry export; coordinate access
// externally if several goroutines must share one instance.
package invcache
