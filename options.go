package exprlang

import (
	"log/slog"

	"github.com/randalmurphal/exprlang/pkg/config"
	"github.com/randalmurphal/exprlang/pkg/diag"
	"github.com/randalmurphal/exprlang/pkg/operator"
)

// ContextOption configures ambient concerns of a Context built by
// NewContext. It never changes core compile/eval semantics — only
// which operator table, logger, tracer/meter, or config a Context
// carries (§4.7).
type ContextOption func(*engineOptions)

// WithOperatorTable shares an existing operator.Table across
// contexts instead of building a fresh operator.DefaultTable(). Use
// this when redirecting an operator on one Context should be visible
// to another.
func WithOperatorTable(table *operator.Table) ContextOption {
	return func(o *engineOptions) {
		o.table = table
	}
}

// WithLogger installs logger for structured logging of Execute and
// ExecuteAST calls. A nil logger (the default) disables logging.
func WithLogger(logger *slog.Logger) ContextOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithTracing enables OpenTelemetry span creation around
// Execute/ExecuteAST calls, using the global tracer provider (see
// package diag). Configure the provider with otel.SetTracerProvider
// before constructing the Context.
func WithTracing() ContextOption {
	return func(o *engineOptions) {
		o.tracingEnabled = true
		o.spans = diag.NewSpanManager()
	}
}

// WithMetrics enables OpenTelemetry metrics recording around
// Execute/ExecuteAST calls, using the global meter provider (see
// package diag). Configure the provider with otel.SetMeterProvider
// before constructing the Context.
func WithMetrics() ContextOption {
	return func(o *engineOptions) {
		o.metricsEnabled = true
		o.metrics = diag.NewMetricsRecorder()
	}
}

// WithConfig installs cfg as the Context's ambient configuration
// (§6.1): whether reserved functions are registered, and the
// advisory string/list length limits a host may enforce via its own
// functions.
func WithConfig(cfg config.Config) ContextOption {
	return func(o *engineOptions) {
		o.config = cfg
	}
}
