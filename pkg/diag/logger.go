// Package diag provides opt-in observability for exprlang: structured
// logging, metrics, and distributed tracing around compile and evaluate.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
// None of them affect the value an expression evaluates to.
package diag

import (
	"log/slog"
	"time"
)

// EnrichLogger adds an evaluation id to a logger.
// Returns a new logger with an eval_id field.
//
// Example:
//
//	enriched := EnrichLogger(logger, evalID)
//	enriched.Debug("evaluating") // includes eval_id
func EnrichLogger(logger *slog.Logger, evalID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("eval_id", evalID))
}

// LogEvalStart logs the start of one Execute/ExecuteAST call.
func LogEvalStart(logger *slog.Logger, evalID string) {
	if logger == nil {
		return
	}
	logger.Debug("eval starting", slog.String("eval_id", evalID))
}

// LogEvalComplete logs successful evaluation.
func LogEvalComplete(logger *slog.Logger, evalID string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("eval completed",
		slog.String("eval_id", evalID),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogEvalError logs an evaluation failure.
func LogEvalError(logger *slog.Logger, evalID string, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("eval failed",
		slog.String("eval_id", evalID),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCompileStart logs the start of a Compile call.
func LogCompileStart(logger *slog.Logger, textLen int) {
	if logger == nil {
		return
	}
	logger.Debug("compile starting", slog.Int("text_len", textLen))
}

// LogCompileError logs a compile failure.
func LogCompileError(logger *slog.Logger, err error) {
	if logger == nil {
		return
	}
	logger.Warn("compile failed", slog.String("error", err.Error()))
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in
// milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
