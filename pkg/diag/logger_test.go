package diag

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferedLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestEnrichLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := EnrichLogger(newBufferedLogger(&buf), "eval-1")
	logger.Debug("hello")
	assert.Contains(t, buf.String(), `"eval_id":"eval-1"`)
}

func TestEnrichLoggerNil(t *testing.T) {
	assert.Nil(t, EnrichLogger(nil, "eval-1"))
}

func TestLogEvalLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferedLogger(&buf)

	LogEvalStart(logger, "eval-1")
	LogEvalComplete(logger, "eval-1", 1.5)
	LogEvalError(logger, "eval-1", errors.New("boom"), 2.0)

	out := buf.String()
	assert.True(t, strings.Contains(out, "eval starting"))
	assert.True(t, strings.Contains(out, "eval completed"))
	assert.True(t, strings.Contains(out, "eval failed"))
	assert.True(t, strings.Contains(out, "boom"))
}

func TestLogFunctionsNilLoggerDoNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		LogEvalStart(nil, "x")
		LogEvalComplete(nil, "x", 0)
		LogEvalError(nil, "x", errors.New("e"), 0)
		LogCompileStart(nil, 0)
		LogCompileError(nil, errors.New("e"))
	})
}

func TestTimedOperation(t *testing.T) {
	done := TimedOperation()
	ms := done()
	assert.GreaterOrEqual(t, ms, 0.0)
}
