package token

// scanIdent consumes [A-Za-z_][A-Za-z0-9_]* and classifies it as BOOL,
// a word-operator OP, or a plain IDENT.
//
// Word-operator classification depends on the operator's fixity: "not"
// is prefix (unary), so it becomes OP only where an operand is
// expected next (the same position a unary "!" would appear);
// "beginWith"/"endWith"/"in" are infix (binary), so they become OP
// only where an operator is expected next, i.e. immediately after a
// complete left operand. A word that doesn't match its fixity's
// expected position remains a plain IDENT, so a host context may still
// bind a variable named e.g. "in" and reference it anywhere an
// identifier, not an infix operator, is expected.
func (l *Lexer) scanIdent() Token {
	start := l.pos
	for l.pos < len(l.src) && (isAlphaNumeric(l.src[l.pos]) || l.src[l.pos] == '_') {
		l.pos++
	}
	word := l.src[start:l.pos]

	switch word {
	case "true", "True", "false", "False":
		return Token{Kind: BOOL, Lexeme: word, Offset: start}
	case "not":
		if l.isOperandExpecting() {
			return Token{Kind: OP, Lexeme: word, Offset: start}
		}
	case "beginWith", "endWith", "in":
		if !l.isOperandExpecting() {
			return Token{Kind: OP, Lexeme: word, Offset: start}
		}
	}

	return Token{Kind: IDENT, Lexeme: word, Offset: start}
}
