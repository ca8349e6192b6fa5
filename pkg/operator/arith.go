package operator

import (
	"math/big"

	"github.com/randalmurphal/exprlang/pkg/errs"
	"github.com/randalmurphal/exprlang/pkg/value"
)

// arithAdd is the binary "+" handler: Number + Number adds, String +
// String and List + List concatenate, and any other pair is a Type
// error.
func arithAdd(args []value.Value) (value.Value, error) {
	a, b := args[0], args[1]
	if an, ok := a.AsNumber(); ok {
		if bn, ok := b.AsNumber(); ok {
			return value.Number(new(big.Rat).Add(an, bn)), nil
		}
		return value.Value{}, errs.TypeError("+", "cannot add Number and %s", b.Kind())
	}
	if as, ok := a.AsString(); ok {
		if bs, ok := b.AsString(); ok {
			return value.String(as + bs), nil
		}
		return value.Value{}, errs.TypeError("+", "cannot add String and %s", b.Kind())
	}
	if al, ok := a.AsList(); ok {
		if bl, ok := b.AsList(); ok {
			out := make([]value.Value, 0, len(al)+len(bl))
			out = append(out, al...)
			out = append(out, bl...)
			return value.List(out), nil
		}
		return value.Value{}, errs.TypeError("+", "cannot add List and %s", b.Kind())
	}
	return value.Value{}, errs.TypeError("+", "unsupported operand types %s and %s", a.Kind(), b.Kind())
}

func numPair(op string, a, b value.Value) (*big.Rat, *big.Rat, error) {
	an, ok := a.AsNumber()
	if !ok {
		return nil, nil, errs.TypeError(op, "expected Number, got %s", a.Kind())
	}
	bn, ok := b.AsNumber()
	if !ok {
		return nil, nil, errs.TypeError(op, "expected Number, got %s", b.Kind())
	}
	return an, bn, nil
}

func arithSub(args []value.Value) (value.Value, error) {
	a, b, err := numPair("-", args[0], args[1])
	if err != nil {
		return value.Value{}, err
	}
	return value.Number(new(big.Rat).Sub(a, b)), nil
}

func arithMul(args []value.Value) (value.Value, error) {
	a, b, err := numPair("*", args[0], args[1])
	if err != nil {
		return value.Value{}, err
	}
	return value.Number(new(big.Rat).Mul(a, b)), nil
}

func arithDiv(args []value.Value) (value.Value, error) {
	a, b, err := numPair("/", args[0], args[1])
	if err != nil {
		return value.Value{}, err
	}
	if b.Sign() == 0 {
		return value.Value{}, errs.ArithmeticError("/", "division by zero")
	}
	return value.Number(new(big.Rat).Quo(a, b)), nil
}

func arithMod(args []value.Value) (value.Value, error) {
	av, bv := args[0], args[1]
	a, b, err := numPair("%", av, bv)
	if err != nil {
		return value.Value{}, err
	}
	if b.Sign() == 0 {
		return value.Value{}, errs.ArithmeticError("%", "modulo by zero")
	}
	if !av.IsInt() || !bv.IsInt() {
		return value.Value{}, errs.ArithmeticError("%", "modulo requires integral operands")
	}
	m := new(big.Int).Mod(a.Num(), b.Num())
	return value.Number(new(big.Rat).SetInt(m)), nil
}
