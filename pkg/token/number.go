package token

import (
	"math/big"

	"github.com/randalmurphal/exprlang/pkg/errs"
)

// scanNumber consumes a maximal run of characters in 0-9 . e E + -
// subject to the placement rules documented on isOperandExpecting and
// validates the result parses as a decimal via big.Rat, matching the
// numeric literal grammar [+-]?digits(.digits)?([eE][+-]?digits)?.
func (l *Lexer) scanNumber() (Token, error) {
	start := l.pos

	if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
		l.pos++
	}

	sawDigit, sawDot, sawExp := false, false, false
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case isDigit(c):
			sawDigit = true
			l.pos++
		case c == '.' && !sawDot && !sawExp:
			sawDot = true
			l.pos++
		case (c == 'e' || c == 'E') && sawDigit && isDigit(l.src[l.pos-1]) && !sawExp:
			sawExp = true
			l.pos++
			if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
				l.pos++
			}
		default:
			goto scanned
		}
	}
scanned:
	lex := l.src[start:l.pos]
	if _, ok := new(big.Rat).SetString(lex); !ok {
		return Token{}, errs.LexError(start, "invalid number literal %q", lex)
	}
	return Token{Kind: NUMBER, Lexeme: lex, Offset: start}, nil
}
