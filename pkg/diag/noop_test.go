package diag

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoopMetrics(t *testing.T) {
	var m MetricsRecorder = NoopMetrics{}
	assert.NotPanics(t, func() {
		m.RecordEvaluation(context.Background(), time.Millisecond, "")
		m.RecordEvaluation(context.Background(), time.Millisecond, "Type")
		m.RecordCompile(context.Background(), time.Millisecond, true)
		m.RecordCompile(context.Background(), time.Millisecond, false)
	})
}

func TestNoopSpanManager(t *testing.T) {
	var s SpanManager = NoopSpanManager{}
	ctx, span := s.StartEvalSpan(context.Background(), "eval-1")
	assert.Equal(t, context.Background(), ctx)
	assert.NotPanics(t, func() {
		s.EndSpanWithError(span, nil)
		s.EndSpanWithError(span, errors.New("boom"))
	})
}
