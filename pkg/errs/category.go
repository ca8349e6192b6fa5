package errs

import "errors"

// Kind classifies why a compile or evaluate call failed, per the
// engine's seven-kind error taxonomy.
type Kind int

const (
	// Lex indicates a malformed number, unterminated string, or invalid character.
	Lex Kind = iota

	// Parse indicates an unexpected token, unmatched bracket, bad
	// ternary, or assignment to a non-reference.
	Parse

	// Resolve indicates an undefined variable or function at eval time.
	Resolve

	// Type indicates an operator or function applied to unsupported variants.
	Type

	// Arithmetic indicates division/modulo by zero or a bitwise
	// operator applied to a non-integral operand.
	Arithmetic

	// Arity indicates a wrong argument count to a function or operator handler.
	Arity

	// Internal indicates a condition that should never occur; it signals an engine bug.
	Internal
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Lex:
		return "lex"
	case Parse:
		return "parse"
	case Resolve:
		return "resolve"
	case Type:
		return "type"
	case Arithmetic:
		return "arithmetic"
	case Arity:
		return "arity"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// KindOf returns the Kind of err if it is (or wraps) an *Error, and
// ok=false otherwise.
func KindOf(err error) (kind Kind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsCompileTime reports whether errors of this kind can only occur
// during Compile (Lex, Parse) as opposed to during evaluation.
func (k Kind) IsCompileTime() bool {
	return k == Lex || k == Parse
}
