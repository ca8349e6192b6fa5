/*
Package parser implements the Pratt (precedence-climbing) parser that
turns a token.Lexer stream into an *ast.Node tree.

The core loop is parseExpression(minPrec): parse one prefix production,
then repeatedly consume an infix operator whose table precedence is at
least minPrec, recursing into its right-hand side with min_prec set to
that same precedence rather than precedence+1. Every operator in this
language associates right-to-left, so that single rule produces
correct associativity uniformly instead of needing a per-operator
left/right flag.

Grounded on the precedence-climbing loop in
AlexanderGrooff-jinja-go__expressions.go's ExprParser.parseExpression,
adapted to this language's own precedence table (package operator) and
to always-right-associative semantics.
*/
package parser
