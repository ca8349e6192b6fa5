package eval

import (
	"github.com/randalmurphal/exprlang/pkg/ast"
	"github.com/randalmurphal/exprlang/pkg/errs"
	"github.com/randalmurphal/exprlang/pkg/exprctx"
	"github.com/randalmurphal/exprlang/pkg/operator"
	"github.com/randalmurphal/exprlang/pkg/value"
)

// Eval recursively evaluates node against ctx and returns the
// resulting Value, or a *errs.Error of Kind Resolve, Type, Arithmetic,
// Arity, or Internal.
func Eval(node *ast.Node, ctx *exprctx.Context) (value.Value, error) {
	if node == nil {
		return value.None, nil
	}

	switch node.Kind {
	case ast.Literal:
		return node.Literal, nil

	case ast.None:
		return value.None, nil

	case ast.Reference:
		v, err := ctx.Resolve(node.Name)
		return v, atOffset(err, node.Offset)

	case ast.Unary:
		return evalUnary(node, ctx)

	case ast.Binary:
		return evalBinary(node, ctx)

	case ast.Ternary:
		return evalTernary(node, ctx)

	case ast.List:
		return evalList(node, ctx)

	case ast.Map:
		return evalMap(node, ctx)

	case ast.Call:
		return evalCall(node, ctx)

	case ast.Index:
		return evalIndex(node, ctx)

	case ast.Chain:
		return evalChain(node, ctx)

	default:
		return value.Value{}, errs.InternalError("eval: unhandled node kind %d", node.Kind)
	}
}

// atOffset fills in err's Offset when it wasn't already tied to a
// source span, so eval-time errors still point somewhere useful in
// the original text.
func atOffset(err error, offset int) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*errs.Error); ok && e.Offset < 0 {
		e.Offset = offset
	}
	return err
}

func evalUnary(node *ast.Node, ctx *exprctx.Context) (value.Value, error) {
	operand, err := Eval(node.Left, ctx)
	if err != nil {
		return value.Value{}, err
	}
	entry, ok := ctx.Table().Unary(node.Op)
	if !ok {
		return value.Value{}, errs.NewAt(errs.Internal, node.Offset, "unregistered unary operator %q", node.Op)
	}
	v, err := entry.Handler([]value.Value{operand})
	if err != nil {
		return value.Value{}, errs.Wrap(err, node.Op, node.Offset)
	}
	return v, nil
}

func evalBinary(node *ast.Node, ctx *exprctx.Context) (value.Value, error) {
	if operator.IsAssignment(node.Op) {
		return evalAssignment(node, ctx)
	}
	switch node.Op {
	case "&&":
		left, err := Eval(node.Left, ctx)
		if err != nil {
			return value.Value{}, err
		}
		if !left.Truthy() {
			return left, nil
		}
		return Eval(node.Right, ctx)
	case "||":
		left, err := Eval(node.Left, ctx)
		if err != nil {
			return value.Value{}, err
		}
		if left.Truthy() {
			return left, nil
		}
		return Eval(node.Right, ctx)
	}

	left, err := Eval(node.Left, ctx)
	if err != nil {
		return value.Value{}, err
	}
	right, err := Eval(node.Right, ctx)
	if err != nil {
		return value.Value{}, err
	}
	entry, ok := ctx.Table().Binary(node.Op)
	if !ok {
		return value.Value{}, errs.NewAt(errs.Internal, node.Offset, "unregistered binary operator %q", node.Op)
	}
	v, err := entry.Handler([]value.Value{left, right})
	if err != nil {
		return value.Value{}, errs.Wrap(err, node.Op, node.Offset)
	}
	return v, nil
}

// evalAssignment implements the precedence-20 family. The parser
// already rejected non-Reference left-hand sides, so node.Left.Kind is
// always ast.Reference here.
func evalAssignment(node *ast.Node, ctx *exprctx.Context) (value.Value, error) {
	name := node.Left.Name

	rhs, err := Eval(node.Right, ctx)
	if err != nil {
		return value.Value{}, err
	}

	if base, compound := operator.CompoundBase(node.Op); compound {
		current, ok := ctx.Lookup(name)
		if !ok {
			return value.Value{}, errs.NewAt(errs.Resolve, node.Offset, "undefined variable %q", name)
		}
		entry, ok := ctx.Table().Binary(base)
		if !ok {
			return value.Value{}, errs.NewAt(errs.Internal, node.Offset, "unregistered binary operator %q", base)
		}
		combined, err := entry.Handler([]value.Value{current, rhs})
		if err != nil {
			return value.Value{}, errs.Wrap(err, node.Op, node.Offset)
		}
		rhs = combined
	}

	ctx.Bind(name, rhs)
	return rhs, nil
}

func evalTernary(node *ast.Node, ctx *exprctx.Context) (value.Value, error) {
	cond, err := Eval(node.Cond, ctx)
	if err != nil {
		return value.Value{}, err
	}
	if cond.Truthy() {
		return Eval(node.Then, ctx)
	}
	return Eval(node.Else, ctx)
}

func evalList(node *ast.Node, ctx *exprctx.Context) (value.Value, error) {
	elems := make([]value.Value, len(node.Elements))
	for i, e := range node.Elements {
		v, err := Eval(e, ctx)
		if err != nil {
			return value.Value{}, err
		}
		elems[i] = v
	}
	return value.List(elems), nil
}

func evalMap(node *ast.Node, ctx *exprctx.Context) (value.Value, error) {
	m := value.NewMap()
	for _, pair := range node.Pairs {
		key, err := Eval(pair.Key, ctx)
		if err != nil {
			return value.Value{}, err
		}
		if !key.Hashable() {
			return value.Value{}, errs.NewAt(errs.Type, pair.Key.Offset, "map key must be Number, Bool, or String, got %s", key.Kind())
		}
		val, err := Eval(pair.Value, ctx)
		if err != nil {
			return value.Value{}, err
		}
		if err := m.Set(key, val); err != nil {
			return value.Value{}, errs.NewAt(errs.Internal, pair.Key.Offset, "%v", err)
		}
	}
	return value.MapValue(m), nil
}

func evalCall(node *ast.Node, ctx *exprctx.Context) (value.Value, error) {
	args := make([]value.Value, len(node.Elements))
	for i, e := range node.Elements {
		v, err := Eval(e, ctx)
		if err != nil {
			return value.Value{}, err
		}
		args[i] = v
	}
	fn, err := ctx.ResolveFunc(node.Name)
	if err != nil {
		return value.Value{}, atOffset(err, node.Offset)
	}
	v, err := fn(args)
	if err != nil {
		return value.Value{}, errs.Wrap(err, node.Name, node.Offset)
	}
	return v, nil
}

// evalIndex implements the added x[k] postfix operator (§3 Index).
func evalIndex(node *ast.Node, ctx *exprctx.Context) (value.Value, error) {
	coll, err := Eval(node.Left, ctx)
	if err != nil {
		return value.Value{}, err
	}
	key, err := Eval(node.Right, ctx)
	if err != nil {
		return value.Value{}, err
	}

	if elems, ok := coll.AsList(); ok {
		n, ok := key.AsNumber()
		if !ok || !key.IsInt() {
			return value.Value{}, errs.NewAt(errs.Type, node.Offset, "list index must be an integral Number, got %s", key.Kind())
		}
		idx := n.Num().Int64()
		if idx < 0 || idx >= int64(len(elems)) {
			return value.Value{}, errs.NewAt(errs.Resolve, node.Offset, "list index %d out of range [0, %d)", idx, len(elems))
		}
		return elems[idx], nil
	}

	if m, ok := coll.AsMap(); ok {
		if !key.Hashable() {
			return value.Value{}, errs.NewAt(errs.Type, node.Offset, "map key must be Number, Bool, or String, got %s", key.Kind())
		}
		v, ok := m.Get(key)
		if !ok {
			return value.Value{}, errs.NewAt(errs.Resolve, node.Offset, "map has no key %s", key.Display())
		}
		return v, nil
	}

	return value.Value{}, errs.NewAt(errs.Type, node.Offset, "cannot index %s", coll.Kind())
}

func evalChain(node *ast.Node, ctx *exprctx.Context) (value.Value, error) {
	result := value.None
	for _, stmt := range node.Statements {
		v, err := Eval(stmt, ctx)
		if err != nil {
			return value.Value{}, err
		}
		result = v
	}
	return result, nil
}
