package ast_test

import (
	"testing"

	"github.com/randalmurphal/exprlang/pkg/ast"
	"github.com/randalmurphal/exprlang/pkg/value"
	"github.com/stretchr/testify/assert"
)

func TestNodeShapes(t *testing.T) {
	lit := &ast.Node{Kind: ast.Literal, Literal: value.NumberFromInt64(1)}
	assert.Equal(t, ast.Literal, lit.Kind)

	bin := &ast.Node{Kind: ast.Binary, Op: "+", Left: lit, Right: lit}
	assert.Equal(t, "+", bin.Op)
	assert.Same(t, lit, bin.Left)

	ternary := &ast.Node{Kind: ast.Ternary, Cond: lit, Then: lit, Else: lit}
	assert.Equal(t, ast.Ternary, ternary.Kind)

	m := &ast.Node{Kind: ast.Map, Pairs: []ast.Pair{{Key: lit, Value: lit}}}
	assert.Len(t, m.Pairs, 1)

	chain := &ast.Node{Kind: ast.Chain, Statements: []*ast.Node{lit, bin}}
	assert.Len(t, chain.Statements, 2)
}
