package token

import (
	"strings"

	"github.com/randalmurphal/exprlang/pkg/errs"
)

// scanString consumes a single- or double-quoted string literal,
// decoding \\ \" \' \n \t \r escapes. The token's Lexeme is the
// decoded text, without surrounding quotes.
func (l *Lexer) scanString() (Token, error) {
	start := l.pos
	quote := l.src[l.pos]
	l.pos++

	var b strings.Builder
	for l.pos < len(l.src) && l.src[l.pos] != quote {
		c := l.src[l.pos]
		if c == '\\' && l.pos+1 < len(l.src) {
			switch l.src[l.pos+1] {
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case '\'':
				b.WriteByte('\'')
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte('\\')
				b.WriteByte(l.src[l.pos+1])
			}
			l.pos += 2
			continue
		}
		b.WriteByte(c)
		l.pos++
	}

	if l.pos >= len(l.src) {
		return Token{}, errs.LexError(start, "unterminated string literal")
	}
	l.pos++ // consume closing quote

	return Token{Kind: STRING, Lexeme: b.String(), Offset: start}, nil
}
