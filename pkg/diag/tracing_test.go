package diag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSpanManager(t *testing.T) {
	sm := NewSpanManager()
	ctx, span := sm.StartEvalSpan(context.Background(), "eval-1")
	assert.NotNil(t, ctx)
	assert.NotPanics(t, func() {
		sm.EndSpanWithError(span, nil)
	})
}
