package builtin

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/randalmurphal/exprlang/pkg/errs"
	"github.com/randalmurphal/exprlang/pkg/exprctx"
	"github.com/randalmurphal/exprlang/pkg/value"
)

// All returns the reserved function set by name, ready to be
// registered into a Context via BindFunc.
func All() map[string]exprctx.Function {
	return map[string]exprctx.Function{
		"min":      Min,
		"max":      Max,
		"abs":      Abs,
		"len":      Len,
		"print":    Print,
		"contains": Contains,
		"humanize": Humanize,
	}
}

// Register binds every reserved function in fns into ctx under its
// name.
func Register(ctx *exprctx.Context, fns map[string]exprctx.Function) {
	for name, fn := range fns {
		ctx.BindFunc(name, fn)
	}
}

func numbers(op string, args []value.Value) ([]*big.Rat, error) {
	if len(args) == 0 {
		return nil, errs.ArityError(op, "%s requires at least one argument", op)
	}
	out := make([]*big.Rat, len(args))
	for i, a := range args {
		n, ok := a.AsNumber()
		if !ok {
			return nil, errs.TypeError(op, "%s expects Number arguments, got %s", op, a.Kind())
		}
		out[i] = n
	}
	return out, nil
}

// Min returns the smallest of one or more Number arguments.
func Min(args []value.Value) (value.Value, error) {
	nums, err := numbers("min", args)
	if err != nil {
		return value.Value{}, err
	}
	best := nums[0]
	for _, n := range nums[1:] {
		if n.Cmp(best) < 0 {
			best = n
		}
	}
	return value.Number(best), nil
}

// Max returns the largest of one or more Number arguments.
func Max(args []value.Value) (value.Value, error) {
	nums, err := numbers("max", args)
	if err != nil {
		return value.Value{}, err
	}
	best := nums[0]
	for _, n := range nums[1:] {
		if n.Cmp(best) > 0 {
			best = n
		}
	}
	return value.Number(best), nil
}

// Abs returns the absolute value of a single Number argument.
func Abs(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Value{}, errs.ArityError("abs", "abs expects exactly one argument, got %d", len(args))
	}
	n, ok := args[0].AsNumber()
	if !ok {
		return value.Value{}, errs.TypeError("abs", "abs expects a Number, got %s", args[0].Kind())
	}
	return value.Number(new(big.Rat).Abs(n)), nil
}

// Len returns the element/character count of a String, List, or Map.
func Len(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Value{}, errs.ArityError("len", "len expects exactly one argument, got %d", len(args))
	}
	switch {
	case args[0].Kind() == value.KindString:
		s, _ := args[0].AsString()
		return value.NumberFromInt64(int64(len([]rune(s)))), nil
	case args[0].Kind() == value.KindList:
		l, _ := args[0].AsList()
		return value.NumberFromInt64(int64(len(l))), nil
	case args[0].Kind() == value.KindMap:
		m, _ := args[0].AsMap()
		return value.NumberFromInt64(int64(m.Len())), nil
	default:
		return value.Value{}, errs.TypeError("len", "len expects String, List, or Map, got %s", args[0].Kind())
	}
}

// Print writes the Display form of each argument to stdout,
// space-separated, and always returns None (§6).
func Print(args []value.Value) (value.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Display()
	}
	fmt.Println(strings.Join(parts, " "))
	return value.None, nil
}

// Contains is a function-call membership test with the haystack first:
// contains(haystack, needle). haystack may be a String (substring test)
// or a List (element membership). Unlike the `in` operator, it accepts
// a String haystack and does not accept a Map.
func Contains(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Value{}, errs.ArityError("contains", "contains expects exactly two arguments, got %d", len(args))
	}
	haystack, needle := args[0], args[1]
	if hs, ok := haystack.AsString(); ok {
		ns, ok := needle.AsString()
		if !ok {
			return value.Value{}, errs.TypeError("contains", "contains(String, ...) expects a String needle, got %s", needle.Kind())
		}
		return value.Bool(strings.Contains(hs, ns)), nil
	}
	if elems, ok := haystack.AsList(); ok {
		for _, e := range elems {
			if value.Equal(e, needle) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	}
	return value.Value{}, errs.TypeError("contains", "contains expects a String or List haystack, got %s", haystack.Kind())
}

// Humanize renders a Number with thousands separators via
// go-humanize, the same formatting Value.Display uses internally for
// large integral magnitudes, exposed here as a directly callable
// function.
func Humanize(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Value{}, errs.ArityError("humanize", "humanize expects exactly one argument, got %d", len(args))
	}
	n, ok := args[0].AsNumber()
	if !ok {
		return value.Value{}, errs.TypeError("humanize", "humanize expects a Number, got %s", args[0].Kind())
	}
	if n.IsInt() && n.Num().IsInt64() {
		return value.String(humanize.Comma(n.Num().Int64())), nil
	}
	f, _ := n.Float64()
	return value.String(humanize.CommafWithDigits(f, 2)), nil
}
