package operator

import (
	"strings"

	"github.com/randalmurphal/exprlang/pkg/errs"
	"github.com/randalmurphal/exprlang/pkg/value"
)

func wordBeginWith(args []value.Value) (value.Value, error) {
	a, ok1 := args[0].AsString()
	b, ok2 := args[1].AsString()
	if !ok1 || !ok2 {
		return value.Value{}, errs.TypeError("beginWith", "expected two Strings, got %s and %s", args[0].Kind(), args[1].Kind())
	}
	return value.Bool(strings.HasPrefix(a, b)), nil
}

func wordEndWith(args []value.Value) (value.Value, error) {
	a, ok1 := args[0].AsString()
	b, ok2 := args[1].AsString()
	if !ok1 || !ok2 {
		return value.Value{}, errs.TypeError("endWith", "expected two Strings, got %s and %s", args[0].Kind(), args[1].Kind())
	}
	return value.Bool(strings.HasSuffix(a, b)), nil
}

// wordIn implements `needle in haystack`: element membership for a
// List, key membership for a Map. Any other haystack variant is a
// Type error.
func wordIn(args []value.Value) (value.Value, error) {
	needle, haystack := args[0], args[1]
	if elems, ok := haystack.AsList(); ok {
		for _, e := range elems {
			if value.Equal(needle, e) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	}
	if m, ok := haystack.AsMap(); ok {
		if !needle.Hashable() {
			return value.Bool(false), nil
		}
		_, found := m.Get(needle)
		return value.Bool(found), nil
	}
	return value.Value{}, errs.TypeError("in", "right operand of 'in' must be List or Map, got %s", haystack.Kind())
}
