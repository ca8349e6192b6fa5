package operator

// registerBuiltins populates t with every operator defined in §4.3:
// arithmetic, bitwise, comparison, the beginWith/endWith/in word
// operators, unary negation/not, the short-circuit logical pair, and
// the assignment family.
func registerBuiltins(t *Table) {
	binaries := []struct {
		symbol     string
		precedence int
		handler    Handler
	}{
		{"+", PrecAdd, arithAdd},
		{"-", PrecAdd, arithSub},
		{"*", PrecMul, arithMul},
		{"/", PrecMul, arithDiv},
		{"%", PrecMul, arithMod},

		{"&", PrecBitAnd, bitAnd},
		{"|", PrecBitOr, bitOr},
		{"^", PrecBitXor, bitXor},
		{"<<", PrecShift, bitShl},
		{">>", PrecShift, bitShr},

		{"==", PrecCompare, cmpEq},
		{"!=", PrecCompare, cmpNe},
		{"<", PrecCompare, cmpLt},
		{"<=", PrecCompare, cmpLe},
		{">", PrecCompare, cmpGt},
		{">=", PrecCompare, cmpGe},

		{"beginWith", PrecWord, wordBeginWith},
		{"endWith", PrecWord, wordEndWith},
		{"in", PrecWord, wordIn},
	}
	for _, b := range binaries {
		t.register(&Entry{Symbol: b.symbol, Arity: Binary, Precedence: b.precedence, Handler: b.handler})
	}

	unaries := []struct {
		symbol  string
		handler Handler
	}{
		{"!", unaryNot},
		{"not", unaryNot},
		{"-", unaryNeg},
		{"+", unaryPos},
	}
	for _, u := range unaries {
		t.register(&Entry{Symbol: u.symbol, Arity: Unary, Precedence: PrecUnary, Handler: u.handler})
	}

	registerLogicalOps(t)
	registerAssignOps(t)
}
