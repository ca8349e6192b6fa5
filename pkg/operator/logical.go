package operator

// logicalOps are the short-circuit binary operators. Like the
// assignment family, these carry a nil Handler: the evaluator must
// avoid evaluating the right operand unconditionally, and "||"/"&&"
// return whichever operand decided rather than a forced Bool (§4.3),
// so there is no (Vec<Value>) -> Value shape that fits them.
var logicalOps = []string{"&&", "||"}

func registerLogicalOps(t *Table) {
	t.register(&Entry{Symbol: "&&", Arity: Binary, Precedence: PrecLogicalAnd, Handler: nil})
	t.register(&Entry{Symbol: "||", Arity: Binary, Precedence: PrecLogicalOr, Handler: nil})
}
