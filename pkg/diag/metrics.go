package diag

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records exprlang compile/evaluate metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordEvaluation records one Execute/ExecuteAST call with its
	// duration and, when it failed, the error kind string.
	RecordEvaluation(ctx context.Context, duration time.Duration, errKind string)

	// RecordCompile records one Compile call with its duration and
	// whether it succeeded.
	RecordCompile(ctx context.Context, duration time.Duration, success bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	evaluations   metric.Int64Counter
	evalLatency   metric.Float64Histogram
	evalErrors    metric.Int64Counter
	compiles      metric.Int64Counter
	compileErrors metric.Int64Counter
	compileLat    metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("exprlang")

	evaluations, err := meter.Int64Counter("exprlang.eval.count",
		metric.WithDescription("Number of Execute/ExecuteAST calls"),
	)
	if err != nil {
		return nil, err
	}

	evalLatency, err := meter.Float64Histogram("exprlang.eval.latency_ms",
		metric.WithDescription("Evaluation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	evalErrors, err := meter.Int64Counter("exprlang.eval.errors",
		metric.WithDescription("Number of evaluation errors, partitioned by kind"),
	)
	if err != nil {
		return nil, err
	}

	compiles, err := meter.Int64Counter("exprlang.compile.count",
		metric.WithDescription("Number of Compile calls"),
	)
	if err != nil {
		return nil, err
	}

	compileErrors, err := meter.Int64Counter("exprlang.compile.errors",
		metric.WithDescription("Number of Compile calls that failed"),
	)
	if err != nil {
		return nil, err
	}

	compileLat, err := meter.Float64Histogram("exprlang.compile.latency_ms",
		metric.WithDescription("Compile latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		evaluations:   evaluations,
		evalLatency:   evalLatency,
		evalErrors:    evalErrors,
		compiles:      compiles,
		compileErrors: compileErrors,
		compileLat:    compileLat,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordEvaluation records one Execute/ExecuteAST call.
func (m *otelMetrics) RecordEvaluation(ctx context.Context, duration time.Duration, errKind string) {
	m.evaluations.Add(ctx, 1)
	m.evalLatency.Record(ctx, float64(duration.Microseconds())/1000)
	if errKind != "" {
		m.evalErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", errKind)))
	}
}

// RecordCompile records one Compile call.
func (m *otelMetrics) RecordCompile(ctx context.Context, duration time.Duration, success bool) {
	m.compiles.Add(ctx, 1)
	m.compileLat.Record(ctx, float64(duration.Microseconds())/1000)
	if !success {
		m.compileErrors.Add(ctx, 1)
	}
}
