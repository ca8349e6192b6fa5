package exprlang

import "github.com/randalmurphal/exprlang/pkg/errs"

// Error is the error type returned by every Compile/Execute/ExecuteAST
// call. It is an alias for errs.Error so callers can type-assert
// against exprlang.Error without importing pkg/errs directly.
type Error = errs.Error

// Kind classifies why a call failed; see errs.Kind for the seven
// values (Lex, Parse, Resolve, Type, Arithmetic, Arity, Internal).
type Kind = errs.Kind

// KindOf reports the Kind of err if it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	return errs.KindOf(err)
}
