package operator

import (
	"github.com/randalmurphal/exprlang/pkg/errs"
	"github.com/randalmurphal/exprlang/pkg/value"
)

func cmpEq(args []value.Value) (value.Value, error) {
	return value.Bool(value.Equal(args[0], args[1])), nil
}

func cmpNe(args []value.Value) (value.Value, error) {
	return value.Bool(!value.Equal(args[0], args[1])), nil
}

// orderCheck validates a and b are an orderable pair (Number/Number or
// String/String), the only pairs <, <=, >, >= are defined for.
func orderCheck(op string, a, b value.Value) error {
	if !value.Orderable(a, b) {
		return errs.TypeError(op, "cannot order %s and %s", a.Kind(), b.Kind())
	}
	return nil
}

func cmpLt(args []value.Value) (value.Value, error) {
	a, b := args[0], args[1]
	if err := orderCheck("<", a, b); err != nil {
		return value.Value{}, err
	}
	return value.Bool(value.Less(a, b)), nil
}

func cmpLe(args []value.Value) (value.Value, error) {
	a, b := args[0], args[1]
	if err := orderCheck("<=", a, b); err != nil {
		return value.Value{}, err
	}
	return value.Bool(value.Less(a, b) || value.Equal(a, b)), nil
}

func cmpGt(args []value.Value) (value.Value, error) {
	a, b := args[0], args[1]
	if err := orderCheck(">", a, b); err != nil {
		return value.Value{}, err
	}
	return value.Bool(value.Less(b, a)), nil
}

func cmpGe(args []value.Value) (value.Value, error) {
	a, b := args[0], args[1]
	if err := orderCheck(">=", a, b); err != nil {
		return value.Value{}, err
	}
	return value.Bool(value.Less(b, a) || value.Equal(a, b)), nil
}
