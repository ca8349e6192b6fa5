// Package eval implements the tree-walking evaluator: Eval(node, ctx)
// recursively dispatches on an *ast.Node's Kind, consulting an
// *exprctx.Context for variable/function bindings and an
// *operator.Table for operator dispatch, and produces a value.Value or
// a *errs.Error.
//
// The dispatch function is a single big switch over ast.Kind rather
// than a method per node type, keeping the hot path monomorphic and
// leaving the operator table as the engine's one extension point
// (§4.5, §9).
package eval
