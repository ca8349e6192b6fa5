package exprlang

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/exprlang/pkg/ast"
	"github.com/randalmurphal/exprlang/pkg/diag"
	"github.com/randalmurphal/exprlang/pkg/errs"
	"github.com/randalmurphal/exprlang/pkg/eval"
	"github.com/randalmurphal/exprlang/pkg/exprctx"
	"github.com/randalmurphal/exprlang/pkg/value"
)

// Execute compiles text and evaluates it against ctx in one step. It
// is a convenience over Compile followed by ExecuteAST.
func Execute(text string, ctx *exprctx.Context) (value.Value, error) {
	node, err := CompileWithTable(text, ctx.Table())
	if err != nil {
		return value.Value{}, err
	}
	return ExecuteAST(node, ctx)
}

// ExecuteAST evaluates a previously compiled AST against ctx. The AST
// is not mutated and may be reused for further calls, including
// concurrently, per the concurrency model in §5.
//
// Every call is tagged with a UUID evaluation id (§5, added), logged
// via ctx's configured slog.Logger at Debug on start and success and
// at Error on failure (a nil logger, the
// default, disables logging entirely), and, when ctx carries a
// SpanManager/MetricsRecorder installed via WithTracing/WithMetrics,
// wrapped in an OpenTelemetry span with an evaluation counter
// partitioned by errs.Kind on failure. None of this affects the
// returned Value.
func ExecuteAST(node *ast.Node, ctx *exprctx.Context) (value.Value, error) {
	evalID := uuid.New().String()
	logger := diag.EnrichLogger(ctx.Logger(), evalID)

	// The span's context isn't propagated into Eval: §5 has no
	// cancellation or timers, so evaluation never observes it.
	_, span := ctx.Spans().StartEvalSpan(context.Background(), evalID)

	diag.LogEvalStart(logger, evalID)
	done := diag.TimedOperation()

	v, err := eval.Eval(node, ctx)

	durationMs := done()
	ctx.Spans().EndSpanWithError(span, err)

	errKind := ""
	if err != nil {
		diag.LogEvalError(logger, evalID, err, durationMs)
		if k, ok := errs.KindOf(err); ok {
			errKind = k.String()
		}
	} else {
		diag.LogEvalComplete(logger, evalID, durationMs)
	}
	ctx.Metrics().RecordEvaluation(context.Background(), time.Duration(durationMs*float64(time.Millisecond)), errKind)

	return v, err
}
