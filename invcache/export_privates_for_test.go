// SPDX-License-Identifier: MIT
// White-box bridge for the external invcache_test package. The _test.go
// suffix keeps these exports out of production builds.

package invcache

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Panic-message exports so tests assert exact messages without magic strings.
var (
	PanicNilLogger_TestOnly         = panicNilLogger
	PanicNilTracerProvider_TestOnly = panicNilTracerProvider
	PanicNilMeterProvider_TestOnly  = panicNilMeterProvider
)

// OptionsSnapshot mirrors the resolved (unexported) Options fields for
// assertions in external tests.
type OptionsSnapshot struct {
	Logger         Logger
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
	Tracing        bool
	Metrics        bool
	Attributes     []attribute.KeyValue
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Logger:         o.logger,
		TracerProvider: o.tracerProvider,
		MeterProvider:  o.meterProvider,
		Tracing:        o.tracing,
		Metrics:        o.metrics,
		Attributes:     o.attributes,
	}
}

// NewCacheOptionsSnapshot_TestOnly resolves opts through the public resolver
// and snapshots the result.
func NewCacheOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(NewCacheOptions(opts...))
}

// FormatMessage_TestOnly exposes ConsoleLogger's line rendering for layout
// assertions.
func (c *ConsoleLogger) FormatMessage_TestOnly(level LogLevel, msg string, keysAndValues ...interface{}) string {
	return c.formatMessage(level, msg, keysAndValues...)
}
