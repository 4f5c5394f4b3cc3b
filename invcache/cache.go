// SPDX-License-Identifier: MIT
// Package invcache: the single-slot inverse cache.
//
// Purpose:
//  - Pair one data matrix with its memoized inverse.
//  - Recompute lazily: only Solve fills the slot, only Store clears it.
//  - Keep the caching decision observable (log notice, counters, span attr).
//
// Notes:
//  - The cache stores references, not copies. Mutating a matrix after handing
//    it to the cache bypasses invalidation; call Store with the new value
//    instead. This mirrors the trust model of StoreInverse.

package invcache

import (
	"context"

	"github.com/katalvlaran/matcache/matrix"
)

// ---------- Log messages ----------

const (
	// msgCacheHit is the observable notice emitted when Solve returns the
	// memoized inverse instead of recomputing.
	msgCacheHit = "getting cached data"

	msgComputeInverse = "computing inverse"
	msgInverseFailed  = "inverse computation failed"
	msgStored         = "stored matrix"
)

// Cache memoizes the inverse of exactly one matrix. The data slot always
// holds a matrix (a placeholder when none was supplied); the inverse slot is
// empty until a successful Solve and is cleared by every Store.
//
// Cache is a single-goroutine structure; see the package documentation.
type Cache struct {
	data matrix.Matrix // current matrix; never nil
	inv  matrix.Matrix // memoized inverse; nil when absent
	opts Options       // resolved configuration
	obs  *instruments  // telemetry handles built from opts
}

// New constructs a cache holding initial with no memoized inverse.
// Implementation:
//   - Stage 1: resolve opts against documented defaults (gatherOptions).
//   - Stage 2: build the telemetry instruments from the resolved providers.
//   - Stage 3: install initial, or the placeholder when initial is nil.
//
// Behavior highlights:
//   - A nil initial installs a DefaultPlaceholderDim² zero matrix: shape
//     validation passes, and the first Solve before any Store fails with
//     matrix.ErrSingular rather than inventing data.
//   - The inverse slot starts empty; New never computes anything.
//
// Inputs:
//   - initial: matrix to cache, or nil for the placeholder.
//   - opts: WithLogger, WithTracing/WithNoTracing, WithMetrics/WithNoMetrics,
//     WithTracerProvider, WithMeterProvider, WithAttributes.
//
// Returns:
//   - *Cache: ready to use; never nil.
//
// Complexity:
//   - Time O(1) plus instrument creation, Space O(1).
//
// AI-Hints:
//   - Construct once and reuse; each New builds its own instrument set from
//     the providers visible at that moment.
func New(initial matrix.Matrix, opts ...Option) *Cache {
	o := gatherOptions(opts...)

	c := &Cache{
		opts: o,
		obs:  initInstruments(o),
	}
	c.data = normalizeData(initial)

	return c
}

// normalizeData substitutes the documented placeholder for a nil matrix.
func normalizeData(m matrix.Matrix) matrix.Matrix {
	if m == nil {
		return placeholder()
	}

	return m
}

// placeholder builds the default data-slot content: a square zero matrix of
// edge DefaultPlaceholderDim.
func placeholder() matrix.Matrix {
	d, err := matrix.NewDense(DefaultPlaceholderDim, DefaultPlaceholderDim)
	if err != nil {
		// NewDense rejects only non-positive dimensions; DefaultPlaceholderDim
		// is a positive constant, so reaching this is a programmer error.
		panic(err)
	}

	return d
}

// Store replaces the cached matrix and unconditionally discards the memoized
// inverse.
// Implementation:
//   - Stage 1: substitute the placeholder when m is nil.
//   - Stage 2: overwrite the data slot, clear the inverse slot.
//   - Stage 3: count the invalidation.
//
// Behavior highlights:
//   - No equality check: storing a matrix numerically identical to the
//     current one still clears the inverse. Change detection is the caller's
//     bargain; the cache only promises the inverse it serves belongs to the
//     matrix it holds.
//   - This is the only operation that changes which matrix the cache
//     represents.
//
// Inputs:
//   - m: replacement matrix, or nil to re-install the placeholder.
//
// Complexity:
//   - Time O(1), Space O(1); the matrix is referenced, not copied.
func (c *Cache) Store(m matrix.Matrix) {
	c.data = normalizeData(m)
	c.inv = nil

	c.obs.recordInvalidation(c.opts)
	c.opts.logger.Debug(msgStored, "rows", c.data.Rows(), "cols", c.data.Cols())
}

// Data returns the stored matrix (the same reference Store or New received;
// the placeholder when constructed with nil).
func (c *Cache) Data() matrix.Matrix {
	return c.data
}

// StoreInverse installs inv as the memoized inverse. The write is trusted:
// no validation against the data slot happens here. Solve is the normal
// caller; external callers take responsibility for coherence. A nil inv
// clears the slot.
func (c *Cache) StoreInverse(inv matrix.Matrix) {
	c.inv = inv
}

// Inverse returns the memoized inverse and whether one is present. The
// boolean is the sole absence signal; the matrix is nil exactly when the
// boolean is false.
func (c *Cache) Inverse() (matrix.Matrix, bool) {
	if c.inv == nil {
		return nil, false
	}

	return c.inv, true
}

// Solve returns the inverse of the cached matrix, memoizing on first use.
// Implementation:
//   - Stage 1: open the cache.solve span (tracing permitting).
//   - Stage 2: if an inverse is memoized, emit the cache-hit notice at Info,
//     tick the hit counter, and return the stored reference unchanged.
//   - Stage 3: otherwise invert the data slot via matrix.Inverse with the
//     caller's solver options forwarded verbatim.
//   - Stage 4: on failure propagate the solver's error untouched and cache
//     nothing; on success memoize via StoreInverse and return the result.
//
// Behavior highlights:
//   - Two Solve calls with no intervening Store return the same reference,
//     so results are bit-for-bit identical across hits.
//   - Failures never poison the slot: the inverse stays absent and the next
//     call recomputes.
//   - ctx carries trace propagation only; the call itself is synchronous and
//     in-memory with no suspension points.
//
// Inputs:
//   - ctx : context for span parenting; use context.Background() when idle.
//   - c   : cache constructed by New.
//   - opts: matrix solver options (matrix.WithPartialPivoting,
//     matrix.WithPivotTolerance, ...), forwarded without interpretation.
//
// Returns:
//   - matrix.Matrix: the inverse of Data().
//   - error        : exactly what matrix.Inverse returned, or ErrNilCache.
//
// Errors:
//   - ErrNilCache                (nil c).
//   - matrix.ErrSingular         (rejected pivot; includes the placeholder).
//   - matrix.ErrDimensionMismatch (non-square data).
//
// Determinism:
//   - Identical cache state and options yield identical results; a hit
//     returns the very value the prior miss produced.
//
// Complexity:
//   - Time O(1) on a hit, O(n³) on a miss; Space O(n²) for the inverse.
//
// AI-Hints:
//   - Solver options matter only on the call that computes; a hit returns
//     the memoized inverse even if different options are passed. Store first
//     to force recomputation under a new policy.
func Solve(ctx context.Context, c *Cache, opts ...matrix.Option) (matrix.Matrix, error) {
	if c == nil {
		return nil, ErrNilCache
	}

	rows, cols := c.data.Rows(), c.data.Cols()
	sp := c.obs.startSolve(ctx, rows, cols, c.opts)

	// Serve the memoized inverse when present.
	if inv, ok := c.Inverse(); ok {
		c.opts.logger.Info(msgCacheHit, "rows", rows, "cols", cols)
		c.obs.finishSolve(sp, true, nil, c.opts)

		return inv, nil
	}

	// Miss: compute through the solver with the caller's options.
	c.opts.logger.Debug(msgComputeInverse, "rows", rows, "cols", cols)
	inv, err := matrix.Inverse(c.Data(), opts...)
	if err != nil {
		// Propagate untouched; the slot stays empty so the next call retries.
		c.opts.logger.Error(msgInverseFailed, "rows", rows, "cols", cols, "error", err)
		c.obs.finishSolve(sp, false, err, c.opts)

		return nil, err
	}

	c.StoreInverse(inv)
	c.obs.finishSolve(sp, false, nil, c.opts)

	return inv, nil
}
