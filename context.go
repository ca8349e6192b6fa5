package exprlang

import (
	"log/slog"

	"github.com/randalmurphal/exprlang/pkg/builtin"
	"github.com/randalmurphal/exprlang/pkg/config"
	"github.com/randalmurphal/exprlang/pkg/diag"
	"github.com/randalmurphal/exprlang/pkg/exprctx"
	"github.com/randalmurphal/exprlang/pkg/operator"
	"github.com/randalmurphal/exprlang/pkg/value"
)

// NewContext builds a Context populated with vars and funcs in one
// step (§4.7), backed by the engine's default operator table unless
// overridden with WithOperatorTable. Reserved functions (min, max,
// abs, len, print, contains, humanize) are registered first, so funcs
// entries with the same name override them.
func NewContext(vars map[string]value.Value, funcs map[string]exprctx.Function, opts ...ContextOption) *exprctx.Context {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	table := cfg.table
	if table == nil {
		table = operator.DefaultTable()
	}
	ctx := exprctx.New(table)
	ctx.SetConfig(cfg.config)
	ctx.SetLogger(cfg.logger)
	if cfg.tracingEnabled {
		ctx.SetSpans(cfg.spans)
	}
	if cfg.metricsEnabled {
		ctx.SetMetrics(cfg.metrics)
	}

	if cfg.config.ReservedFunctionsEnabled() {
		builtin.Register(ctx, builtin.All())
	}

	for name, v := range vars {
		ctx.Bind(name, v)
	}
	for name, fn := range funcs {
		ctx.BindFunc(name, fn)
	}

	return ctx
}

// engineOptions accumulates ContextOption settings before NewContext
// builds the Context. It exists so options can be applied in any
// order without threading partially-built state through exprctx.
type engineOptions struct {
	table          *operator.Table
	logger         *slog.Logger
	spans          diag.SpanManager
	metrics        diag.MetricsRecorder
	tracingEnabled bool
	metricsEnabled bool
	config         config.Config
}

func defaultOptions() engineOptions {
	return engineOptions{config: config.New(nil)}
}
