package operator

import (
	"github.com/randalmurphal/exprlang/pkg/errs"
	"github.com/randalmurphal/exprlang/pkg/registry"
	"github.com/randalmurphal/exprlang/pkg/value"
)

// Handler implements an operator's runtime semantics given its already
// evaluated operands. Assignment-family and short-circuit logical
// operators are not invoked through Handler — the evaluator special
// cases them, since they need Context access or must avoid evaluating
// both operands — so their entries carry a nil Handler.
type Handler func(args []value.Value) (value.Value, error)

// Entry is one operator registration: its symbol, arity, precedence,
// and handler. Precedence and associativity (always right-to-left in
// this language) are fixed at registration time and are never touched
// by Redirect.
type Entry struct {
	Symbol     string
	Arity      Arity
	Precedence int
	Handler    Handler
}

// Table is the operator registry consulted by the parser (for
// precedence) and the evaluator (for dispatch).
type Table struct {
	unary  *registry.Registry[string, *Entry]
	binary *registry.Registry[string, *Entry]
}

// NewTable returns an empty Table with no entries registered.
func NewTable() *Table {
	return &Table{
		unary:  registry.New[string, *Entry](),
		binary: registry.New[string, *Entry](),
	}
}

// DefaultTable returns a Table pre-populated with the engine's builtin
// operators (§4.3): arithmetic, bitwise, comparison, logical,
// negation, beginWith/endWith/in, and the assignment family.
func DefaultTable() *Table {
	t := NewTable()
	registerBuiltins(t)
	return t
}

// Binary looks up a binary operator entry by symbol.
func (t *Table) Binary(symbol string) (*Entry, bool) {
	return t.binary.Get(symbol)
}

// Unary looks up a unary operator entry by symbol.
func (t *Table) Unary(symbol string) (*Entry, bool) {
	return t.unary.Get(symbol)
}

// register adds entry to the table keyed by its Arity.
func (t *Table) register(e *Entry) {
	if e.Arity == Unary {
		t.unary.Register(e.Symbol, e)
	} else {
		t.binary.Register(e.Symbol, e)
	}
}

// Redirect replaces the handler for an already-registered operator,
// preserving its precedence and arity. It reports an Internal error if
// the symbol/arity pair has not been registered, since redirection
// only ever replaces an existing entry and never introduces a new
// operator or precedence.
func (t *Table) Redirect(symbol string, arity Arity, handler Handler) error {
	reg := t.binary
	if arity == Unary {
		reg = t.unary
	}
	existing, ok := reg.Get(symbol)
	if !ok {
		return errs.InternalError("operator: cannot redirect unregistered operator %q", symbol)
	}
	redirected := &Entry{
		Symbol:     existing.Symbol,
		Arity:      existing.Arity,
		Precedence: existing.Precedence,
		Handler:    handler,
	}
	reg.Register(symbol, redirected)
	return nil
}
