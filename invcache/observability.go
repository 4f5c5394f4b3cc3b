// SPDX-License-Identifier: MIT
// Package invcache: OpenTelemetry instrumentation.
// Every Solve runs inside a "cache.solve" span and feeds the counters below;
// Store feeds the invalidation counter. Both signals honor the enable flags
// and shared attributes resolved in options.go.

package invcache

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Instrumentation library identity.
	instrumentationName    = "github.com/katalvlaran/matcache/invcache"
	instrumentationVersion = "0.1.0"

	// spanSolve names the span wrapping every Solve call.
	spanSolve = "cache.solve"

	// attrCacheHit marks whether a Solve was served from the cached inverse.
	attrCacheHit = "cache.hit"
)

// instruments holds the OpenTelemetry tracer, meter and named instruments.
type instruments struct {
	tracer trace.Tracer
	meter  metric.Meter

	// Metrics
	solveDuration     metric.Float64Histogram
	hitCount          metric.Int64Counter
	missCount         metric.Int64Counter
	solveErrors       metric.Int64Counter
	invalidationCount metric.Int64Counter
}

// initInstruments builds the instrument set from the resolved providers.
// Instrument-creation failures are reported through otel.Handle and leave
// the corresponding instrument nil; recording sites stay nil-safe.
func initInstruments(o Options) *instruments {
	tracer := o.tracerProvider.Tracer(instrumentationName, trace.WithInstrumentationVersion(instrumentationVersion))
	meter := o.meterProvider.Meter(instrumentationName, metric.WithInstrumentationVersion(instrumentationVersion))

	oi := &instruments{
		tracer: tracer,
		meter:  meter,
	}

	var err error

	oi.solveDuration, err = meter.Float64Histogram(
		"cache.solve.duration",
		metric.WithDescription("Duration of cache solve calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		otel.Handle(err)
	}

	oi.hitCount, err = meter.Int64Counter(
		"cache.hit.count",
		metric.WithDescription("Number of solve calls served from the cached inverse"),
	)
	if err != nil {
		otel.Handle(err)
	}

	oi.missCount, err = meter.Int64Counter(
		"cache.miss.count",
		metric.WithDescription("Number of solve calls that computed a fresh inverse"),
	)
	if err != nil {
		otel.Handle(err)
	}

	oi.solveErrors, err = meter.Int64Counter(
		"cache.solve.errors",
		metric.WithDescription("Number of solve calls that failed"),
	)
	if err != nil {
		otel.Handle(err)
	}

	oi.invalidationCount, err = meter.Int64Counter(
		"cache.invalidation.count",
		metric.WithDescription("Number of times Store reset the cached inverse"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return oi
}

// solveSpan tracks one in-flight Solve between start and finish: the live
// span when tracing is on, plus the wall-clock start either way so the
// duration histogram keeps working with tracing off.
type solveSpan struct {
	span  trace.Span
	start time.Time
}

// startSolve opens the cache.solve span under ctx when tracing is enabled.
// ctx is consumed for span parenting only; Solve has no nested spans, so no
// derived context needs to travel back.
func (oi *instruments) startSolve(ctx context.Context, rows, cols int, o Options) *solveSpan {
	sp := &solveSpan{start: time.Now()}
	if !o.tracing {
		return sp
	}

	attrs := make([]attribute.KeyValue, 0, len(o.attributes)+2)
	attrs = append(attrs, o.attributes...)
	attrs = append(attrs,
		attribute.Int("matrix.rows", rows),
		attribute.Int("matrix.cols", cols),
	)

	_, sp.span = oi.tracer.Start(ctx, spanSolve,
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	return sp
}

// finishSolve closes a solve: one counter tick for the outcome, the duration
// sample, and the span end with hit/error result attributes.
func (oi *instruments) finishSolve(sp *solveSpan, hit bool, err error, o Options) {
	duration := time.Since(sp.start)

	if o.metrics {
		attrs := metric.WithAttributes(o.attributes...)

		if oi.solveDuration != nil {
			oi.solveDuration.Record(context.Background(), duration.Seconds(), attrs)
		}

		switch {
		case err != nil:
			if oi.solveErrors != nil {
				oi.solveErrors.Add(context.Background(), 1, attrs)
			}
		case hit:
			if oi.hitCount != nil {
				oi.hitCount.Add(context.Background(), 1, attrs)
			}
		default:
			if oi.missCount != nil {
				oi.missCount.Add(context.Background(), 1, attrs)
			}
		}
	}

	if o.tracing && sp.span != nil {
		sp.span.SetAttributes(
			attribute.Bool(attrCacheHit, hit),
			attribute.Float64("cache.solve.duration_ms", float64(duration.Nanoseconds())/1e6),
		)

		if err != nil {
			sp.span.RecordError(err)
			sp.span.SetStatus(codes.Error, err.Error())
		} else {
			sp.span.SetStatus(codes.Ok, "")
		}

		sp.span.End()
	}
}

// recordInvalidation counts a Store resetting the cached inverse.
func (oi *instruments) recordInvalidation(o Options) {
	if !o.metrics || oi.invalidationCount == nil {
		return
	}

	oi.invalidationCount.Add(context.Background(), 1, metric.WithAttributes(o.attributes...))
}
