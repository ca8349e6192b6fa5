package exprlang

import (
	"github.com/randalmurphal/exprlang/pkg/ast"
	"github.com/randalmurphal/exprlang/pkg/operator"
	"github.com/randalmurphal/exprlang/pkg/parser"
)

// Compile parses text into an immutable AST using the engine's default
// operator table. It is pure (§4.7): it has no side effects, and the
// same text always yields a structurally equal AST (§8 idempotence).
//
// The returned error, if any, is a *errs.Error of Kind Lex or Parse.
func Compile(text string) (*ast.Node, error) {
	return CompileWithTable(text, operator.DefaultTable())
}

// CompileWithTable parses text using table for operator lookup and
// precedence instead of the default table. Execute uses it with the
// Context's own table so the parser and the evaluator consult the
// same table.
func CompileWithTable(text string, table *operator.Table) (*ast.Node, error) {
	return parser.Parse(text, table)
}
