/*
Package exprlang is an embeddable expression engine: it compiles short
textual expressions (arithmetic, logical, string, collection,
conditional, function-call, assignment, sequencing) into an in-memory
AST and evaluates that AST against a host-supplied Context of
variables and functions, returning a dynamically typed Value.

# Basic usage

	ctx := exprlang.NewContext(
	    map[string]value.Value{"a": value.NumberFromInt64(5)},
	    nil,
	)
	result, err := exprlang.Execute("a > 3 ? 'big' : 'small'", ctx)
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(result.Display()) // "big"

# Compiling once, evaluating many times

A compiled AST is immutable and may be reused across many Execute
calls, including concurrently from multiple goroutines as long as each
goroutine either uses its own Context or the shared Context is
read-only (no assignment operators in the expression):

	ast, err := exprlang.Compile("price * (1 - discount)")
	if err != nil {
	    log.Fatal(err)
	}
	result, err := exprlang.ExecuteAST(ast, ctx)

# Operator redirection

A host may replace any builtin operator's handler without changing its
precedence or associativity:

	ctx.RedirectOperator("+", operator.Binary, func(args []value.Value) (value.Value, error) {
	    // custom "+"
	})

See package eval for evaluation semantics, package parser for the
grammar, and package operator for the precedence table.
*/
package exprlang
