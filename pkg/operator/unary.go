package operator

import (
	"math/big"

	"github.com/randalmurphal/exprlang/pkg/errs"
	"github.com/randalmurphal/exprlang/pkg/value"
)

// unaryNot, unaryNeg, and unaryPos are the only unary handlers: the
// lexer's ops1 table never produces a "~" token, so there is no
// bitwise-complement operator to register.

// unaryNot implements both "!" and "not": Bool coercion via Truthy,
// then negation. Unlike the short-circuit "&&"/"||" (handled directly
// by the evaluator, not through Handler), negation always forces its
// operand to Bool rather than returning it unchanged.
func unaryNot(args []value.Value) (value.Value, error) {
	return value.Bool(!args[0].Truthy()), nil
}

// unaryNeg implements numeric negation ("-x").
func unaryNeg(args []value.Value) (value.Value, error) {
	n, ok := args[0].AsNumber()
	if !ok {
		return value.Value{}, errs.TypeError("-", "unary minus requires a Number, got %s", args[0].Kind())
	}
	return value.Number(new(big.Rat).Neg(n)), nil
}

// unaryPos implements unary "+", a no-op identity on Numbers kept for
// symmetry with unary "-".
func unaryPos(args []value.Value) (value.Value, error) {
	if _, ok := args[0].AsNumber(); !ok {
		return value.Value{}, errs.TypeError("+", "unary plus requires a Number, got %s", args[0].Kind())
	}
	return args[0], nil
}
