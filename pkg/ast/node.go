package ast

import "github.com/randalmurphal/exprlang/pkg/value"

// Kind tags the shape a Node holds.
type Kind uint8

const (
	// Literal is a leaf holding a constant Value.
	Literal Kind = iota
	// Reference is an identifier resolved against a Context at eval time.
	Reference
	// Unary is a prefix operator applied to one operand.
	Unary
	// Binary is an infix operator applied to two operands, including
	// the assignment family (Op is one of = += -= *= /= %= &= |= ^= <<= >>=).
	Binary
	// Ternary is the c ? a : b conditional.
	Ternary
	// List is an ordered list literal.
	List
	// Map is a map literal, built from ordered key/value pairs.
	Map
	// Call is a function invocation by name.
	Call
	// Index is the postfix x[k] collection-access operator.
	Index
	// None is the literal None, distinct from Literal so the parser
	// need not construct a value.Value for it ahead of evaluation.
	None
	// Chain is a ;-separated sequence of statements; its value is the
	// last statement's value.
	Chain
)

// Pair is one key/value production inside a Map literal.
type Pair struct {
	Key   *Node
	Value *Node
}

// Node is the tagged expression-tree node. Only the fields relevant to
// Kind are populated; see the per-Kind comments above.
type Node struct {
	Kind Kind

	// Offset is the source byte offset this node began at, used for
	// Resolve/Type/Arithmetic/Arity error messages at eval time.
	Offset int

	Literal value.Value // Literal

	Name string // Reference, Call

	Op string // Unary, Binary

	Left  *Node // Unary operand; Binary/Index lhs
	Right *Node // Binary rhs; Index key

	Cond *Node // Ternary condition
	Then *Node // Ternary true-branch
	Else *Node // Ternary false-branch

	Elements []*Node // List elements, Call args

	Pairs []Pair // Map pairs

	Statements []*Node // Chain
}
