package operator

// Binary precedence table, ground truth the parser must match exactly.
const (
	PrecAssign = 20

	// PrecTernary sits just above assignment so "c ? a : b" binds more
	// loosely than any operator other than assignment, per §4.4.
	PrecTernary = 30

	PrecLogicalOr  = 40
	PrecLogicalAnd = 50
	PrecCompare    = 60
	PrecBitOr      = 70
	PrecBitXor     = 80
	PrecBitAnd     = 90
	PrecShift      = 100
	PrecAdd        = 110
	PrecMul        = 120
	PrecWord       = 200 // beginWith, endWith, in

	// PrecUnary is shared by the unary operators (!, not, -, +): one
	// precedence above all binaries except bracket/call/index.
	PrecUnary = 210

	// PrecIndex is the postfix x[k] operator's precedence, above unary
	// so that x[0] + 1 binds the index before the addition.
	PrecIndex = 220
)

// Arity distinguishes unary from binary operator entries; the same
// symbol may appear in both tables with independent precedences, as
// "-" and "+" do (binary at PrecAdd, unary at PrecUnary).
type Arity uint8

const (
	Unary Arity = iota
	Binary
)
