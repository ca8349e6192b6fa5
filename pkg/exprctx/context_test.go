package exprctx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/exprlang/pkg/errs"
	"github.com/randalmurphal/exprlang/pkg/exprctx"
	"github.com/randalmurphal/exprlang/pkg/operator"
	"github.com/randalmurphal/exprlang/pkg/value"
)

func TestBindAndLookup(t *testing.T) {
	ctx := exprctx.New(nil)
	ctx.Bind("x", value.NumberFromInt64(1))
	v, ok := ctx.Lookup("x")
	require.True(t, ok)
	assert.True(t, value.Equal(value.NumberFromInt64(1), v))
}

func TestUnbind(t *testing.T) {
	ctx := exprctx.New(nil)
	ctx.Bind("x", value.NumberFromInt64(1))
	ctx.Unbind("x")
	_, ok := ctx.Lookup("x")
	assert.False(t, ok)
}

func TestResolveFallsBackToZeroArgFunction(t *testing.T) {
	ctx := exprctx.New(nil)
	ctx.BindFunc("f", func(args []value.Value) (value.Value, error) {
		return value.String("called"), nil
	})
	v, err := ctx.Resolve("f")
	require.NoError(t, err)
	s, _ := v.AsString()
	assert.Equal(t, "called", s)
}

func TestResolveUndefinedIsResolveError(t *testing.T) {
	ctx := exprctx.New(nil)
	_, err := ctx.Resolve("nope")
	require.Error(t, err)
	kind, ok := errs.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, errs.Resolve, kind)
}

func TestRedirectUnregisteredOperatorFails(t *testing.T) {
	ctx := exprctx.New(operator.DefaultTable())
	err := ctx.RedirectOperator("@@", operator.Binary, func(args []value.Value) (value.Value, error) {
		return value.None, nil
	})
	require.Error(t, err)
	kind, ok := errs.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, errs.Internal, kind)
}

func TestRedirectReplacesHandler(t *testing.T) {
	ctx := exprctx.New(operator.DefaultTable())
	require.NoError(t, ctx.RedirectOperator("+", operator.Binary, func(args []value.Value) (value.Value, error) {
		return value.String("redirected"), nil
	}))
	entry, ok := ctx.Table().Binary("+")
	require.True(t, ok)
	v, err := entry.Handler([]value.Value{value.NumberFromInt64(1), value.NumberFromInt64(2)})
	require.NoError(t, err)
	s, _ := v.AsString()
	assert.Equal(t, "redirected", s)
	assert.Equal(t, operator.PrecAdd, entry.Precedence)
}

func TestDepthGuardFailsPastMax(t *testing.T) {
	guard := exprctx.DepthGuard(2)
	_, err := guard(nil)
	require.NoError(t, err)
	_, err = guard(nil)
	require.NoError(t, err)
	_, err = guard(nil)
	require.Error(t, err)
	kind, ok := errs.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, errs.Arity, kind)
}
