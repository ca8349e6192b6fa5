package exprlang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/exprlang"
	"github.com/randalmurphal/exprlang/pkg/ast"
	"github.com/randalmurphal/exprlang/pkg/config"
	"github.com/randalmurphal/exprlang/pkg/errs"
	"github.com/randalmurphal/exprlang/pkg/exprctx"
	"github.com/randalmurphal/exprlang/pkg/value"
)

func TestCompileIdempotent(t *testing.T) {
	a, err := exprlang.Compile("1 + 2 * 3")
	require.NoError(t, err)
	b, err := exprlang.Compile("1 + 2 * 3")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestExecuteEndToEnd(t *testing.T) {
	ctx := exprlang.NewContext(map[string]value.Value{
		"a": value.NumberFromInt64(5),
	}, nil)
	v, err := exprlang.Execute("a > 3 ? 'big' : 'small'", ctx)
	require.NoError(t, err)
	s, _ := v.AsString()
	assert.Equal(t, "big", s)
}

func TestExecuteASTReusesCompiledAST(t *testing.T) {
	node, err := exprlang.Compile("1 + 1")
	require.NoError(t, err)

	ctx1 := exprlang.NewContext(nil, nil)
	v1, err := exprlang.ExecuteAST(node, ctx1)
	require.NoError(t, err)

	ctx2 := exprlang.NewContext(nil, nil)
	v2, err := exprlang.ExecuteAST(node, ctx2)
	require.NoError(t, err)

	assert.True(t, value.Equal(v1, v2))
}

func TestNewContextRegistersReservedFunctions(t *testing.T) {
	ctx := exprlang.NewContext(nil, nil)
	v, err := exprlang.Execute("len('hello')", ctx)
	require.NoError(t, err)
	n, _ := v.AsNumber()
	assert.Equal(t, int64(5), n.Num().Int64())
}

func TestReservedFunctionsCanBeDisabled(t *testing.T) {
	cfg := config.New(map[string]any{"reserved_functions_enabled": false})
	ctx := exprlang.NewContext(nil, nil, exprlang.WithConfig(cfg))
	_, err := exprlang.Execute("len('hello')", ctx)
	require.Error(t, err)
}

func TestHostFunctionOverridesReserved(t *testing.T) {
	ctx := exprlang.NewContext(nil, map[string]exprctx.Function{
		"len": func(args []value.Value) (value.Value, error) {
			return value.NumberFromInt64(-1), nil
		},
	})
	v, err := exprlang.Execute("len('hello')", ctx)
	require.NoError(t, err)
	n, _ := v.AsNumber()
	assert.Equal(t, int64(-1), n.Num().Int64())
}

func TestDivisionByZeroReturnsArithmeticKind(t *testing.T) {
	ctx := exprlang.NewContext(nil, nil)
	_, err := exprlang.Execute("1 / 0", ctx)
	require.Error(t, err)
	kind, ok := exprlang.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, errs.Arithmetic, kind)
}

func TestErrorCarriesOffsetForParseFailures(t *testing.T) {
	_, err := exprlang.Compile("1 + ")
	require.Error(t, err)
	var e *exprlang.Error
	require.ErrorAs(t, err, &e)
	assert.GreaterOrEqual(t, e.Offset, 0)
}

func TestEmptyProgramCompilesToNone(t *testing.T) {
	node, err := exprlang.Compile("")
	require.NoError(t, err)
	assert.Equal(t, ast.None, node.Kind)
}
