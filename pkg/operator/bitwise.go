package operator

import (
	"math/big"

	"github.com/randalmurphal/exprlang/pkg/errs"
	"github.com/randalmurphal/exprlang/pkg/value"
)

// intPair validates that both operands are integral Numbers, as
// required by the bitwise family (§4.3), and returns their *big.Int
// numerators.
func intPair(op string, a, b value.Value) (*big.Int, *big.Int, error) {
	an, ok := a.AsNumber()
	if !ok || !a.IsInt() {
		return nil, nil, errs.ArithmeticError(op, "bitwise operators require integral Number operands, got %s", a.Kind())
	}
	bn, ok := b.AsNumber()
	if !ok || !b.IsInt() {
		return nil, nil, errs.ArithmeticError(op, "bitwise operators require integral Number operands, got %s", b.Kind())
	}
	return an.Num(), bn.Num(), nil
}

func bitAnd(args []value.Value) (value.Value, error) {
	a, b, err := intPair("&", args[0], args[1])
	if err != nil {
		return value.Value{}, err
	}
	return value.Number(new(big.Rat).SetInt(new(big.Int).And(a, b))), nil
}

func bitOr(args []value.Value) (value.Value, error) {
	a, b, err := intPair("|", args[0], args[1])
	if err != nil {
		return value.Value{}, err
	}
	return value.Number(new(big.Rat).SetInt(new(big.Int).Or(a, b))), nil
}

func bitXor(args []value.Value) (value.Value, error) {
	a, b, err := intPair("^", args[0], args[1])
	if err != nil {
		return value.Value{}, err
	}
	return value.Number(new(big.Rat).SetInt(new(big.Int).Xor(a, b))), nil
}

func bitShl(args []value.Value) (value.Value, error) {
	a, b, err := intPair("<<", args[0], args[1])
	if err != nil {
		return value.Value{}, err
	}
	if b.Sign() < 0 {
		return value.Value{}, errs.ArithmeticError("<<", "negative shift count")
	}
	return value.Number(new(big.Rat).SetInt(new(big.Int).Lsh(a, uint(b.Uint64())))), nil
}

func bitShr(args []value.Value) (value.Value, error) {
	a, b, err := intPair(">>", args[0], args[1])
	if err != nil {
		return value.Value{}, err
	}
	if b.Sign() < 0 {
		return value.Value{}, errs.ArithmeticError(">>", "negative shift count")
	}
	return value.Number(new(big.Rat).SetInt(new(big.Int).Rsh(a, uint(b.Uint64())))), nil
}
