// SPDX-License-Identifier: MIT

// Package invcache: functional configuration for the cache's ambient
// concerns, which are logging and telemetry. Solver behavior is configured
// elsewhere: Solve forwards matrix.Option values (WithPartialPivoting,
// WithPivotTolerance, ...) per call and the cache never inspects them.
//
// A fresh cache is observable out of the box: the hit notice logs at Info and
// spans/metrics flow through the global OpenTelemetry providers. Every seam
// here exists to redirect or silence that default, and each WithX constructor
// panics on a nil replacement rather than quietly reinstating the default.
package invcache

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ---------- Defaults ----------

const (
	// DefaultPlaceholderDim is the edge length of the square zero matrix
	// installed when the cache is constructed (or stored) with a nil matrix.
	// A 1×1 zero is the smallest shape that passes square validation while
	// staying singular, so solving before any real Store fails loudly with
	// matrix.ErrSingular instead of fabricating data.
	DefaultPlaceholderDim = 1

	// DefaultLogLevel is the console level of the default logger. Info keeps
	// the cache-hit notice visible out of the box.
	DefaultLogLevel = LogLevelInfo

	// DefaultTracing enables the cache.solve span on a fresh cache.
	DefaultTracing = true

	// DefaultMetrics enables the counter/histogram set on a fresh cache.
	DefaultMetrics = true
)

// Panic messages, mirrored into the white-box test bridge.
const (
	panicNilLogger         = "invcache: WithLogger: logger must be non-nil"
	panicNilTracerProvider = "invcache: WithTracerProvider: provider must be non-nil"
	panicNilMeterProvider  = "invcache: WithMeterProvider: provider must be non-nil"
)

// ---------- Option type ----------

// Option mutates internal options. Applying the same Option twice is safe.
type Option func(*Options)

// Options holds the effective configuration after option resolution. Fields
// stay unexported; New accepts ...Option and resolves through gatherOptions.
type Options struct {
	logger Logger // never nil after resolution

	// nil means "resolve the global otel provider"
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider

	tracing bool // DefaultTracing
	metrics bool // DefaultMetrics

	// attributes shared by every span and metric sample
	attributes []attribute.KeyValue
}

// ---------- WithX constructors ----------

// WithLogger replaces the cache's logger. The cache-hit notice is emitted at
// Info through this logger, so swapping in NoOpLogger silences the package
// and a recording logger captures it in tests.
//
// Panics with a stable message when l is nil: misconfiguration should surface
// at construction, not as a later nil dereference. Pass &NoOpLogger{} rather
// than nil to disable logging.
func WithLogger(l Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithTracerProvider routes spans through the given provider instead of the
// global one. Panics on nil; use WithNoTracing to disable spans instead.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic(panicNilTracerProvider)
	}

	return func(o *Options) { o.tracerProvider = tp }
}

// WithMeterProvider routes metrics through the given provider instead of the
// global one. Panics on nil; use WithNoMetrics to disable metrics instead.
func WithMeterProvider(mp metric.MeterProvider) Option {
	if mp == nil {
		panic(panicNilMeterProvider)
	}

	return func(o *Options) { o.meterProvider = mp }
}

// WithTracing enables the cache.solve span (default).
func WithTracing() Option {
	return func(o *Options) { o.tracing = true }
}

// WithNoTracing disables span creation; Solve still runs and logs normally.
func WithNoTracing() Option {
	return func(o *Options) { o.tracing = false }
}

// WithMetrics enables the counter/histogram set (default).
func WithMetrics() Option {
	return func(o *Options) { o.metrics = true }
}

// WithNoMetrics disables metric recording; instruments are still created so
// re-enabling needs no re-wiring.
func WithNoMetrics() Option {
	return func(o *Options) { o.metrics = false }
}

// WithAttributes appends attributes shared by every span and metric sample
// the cache emits (deployment environment, tenant, ...). Attributes
// accumulate across repeated WithAttributes applications in order.
func WithAttributes(attrs ...attribute.KeyValue) Option {
	return func(o *Options) { o.attributes = append(o.attributes, attrs...) }
}

// ---------- Option resolution ----------

// NewCacheOptions resolves setters against the documented defaults and
// returns the effective configuration. Pure; later setters override earlier
// ones.
//
// AI-Hints:
//   - New calls this for you; reach for it directly only when forwarding a
//     pre-resolved policy through APIs that accept Options by value.
func NewCacheOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults, normalized. Telemetry
// providers start nil and resolve to the globals in finalizeOptions.
func defaultOptions() Options {
	o := Options{
		logger:  NewConsoleLogger(DefaultLogLevel),
		tracing: DefaultTracing,
		metrics: DefaultMetrics,
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
// setters ran. Nil providers resolve to the current globals here, so a
// provider installed with otel.SetTracerProvider before New is honored and
// one installed after is not; bind explicitly with WithTracerProvider /
// WithMeterProvider when that ordering is not under your control.
func finalizeOptions(o *Options) {
	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}
	if o.meterProvider == nil {
		o.meterProvider = otel.GetMeterProvider()
	}
}
