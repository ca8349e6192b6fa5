package token

import "github.com/randalmurphal/exprlang/pkg/errs"

// Lexer scans source text into Tokens with one-token lookahead.
type Lexer struct {
	src      string
	pos      int
	lastKind *Kind
	peeked   *Token
	peekErr  error
}

// New creates a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Peek returns the next token without consuming it. Calling Peek
// repeatedly without an intervening Next returns the same token.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked == nil {
		t, err := l.scan()
		l.peeked = &t
		l.peekErr = err
	}
	return *l.peeked, l.peekErr
}

// Next consumes and returns the next token.
func (l *Lexer) Next() (Token, error) {
	var t Token
	var err error
	if l.peeked != nil {
		t, err = *l.peeked, l.peekErr
		l.peeked, l.peekErr = nil, nil
	} else {
		t, err = l.scan()
	}
	if err == nil {
		k := t.Kind
		l.lastKind = &k
	}
	return t, err
}

// isOperandExpecting reports whether the parser is in a position where
// an operand (not an infix operator) is expected next: at the start of
// input, or immediately after an operator, open bracket, comma, colon,
// question mark, or semicolon. This single piece of state drives the
// disambiguation rules: whether a leading +/- begins a number literal,
// whether the prefix word-operator "not" tokenizes as OP, and (when it
// is false) whether the infix words beginWith/endWith/in do.
func (l *Lexer) isOperandExpecting() bool {
	if l.lastKind == nil {
		return true
	}
	switch *l.lastKind {
	case OP, LPAREN, LBRACK, LBRACE, COMMA, COLON, QUESTION, SEMI:
		return true
	default:
		return false
	}
}

func (l *Lexer) scan() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Offset: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]

	switch c {
	case '(':
		l.pos++
		return Token{LPAREN, "(", start}, nil
	case ')':
		l.pos++
		return Token{RPAREN, ")", start}, nil
	case '[':
		l.pos++
		return Token{LBRACK, "[", start}, nil
	case ']':
		l.pos++
		return Token{RBRACK, "]", start}, nil
	case '{':
		l.pos++
		return Token{LBRACE, "{", start}, nil
	case '}':
		l.pos++
		return Token{RBRACE, "}", start}, nil
	case ',':
		l.pos++
		return Token{COMMA, ",", start}, nil
	case ':':
		l.pos++
		return Token{COLON, ":", start}, nil
	case '?':
		l.pos++
		return Token{QUESTION, "?", start}, nil
	case ';':
		l.pos++
		return Token{SEMI, ";", start}, nil
	case '"', '\'':
		return l.scanString()
	}

	signedNumber := (c == '+' || c == '-') && l.isOperandExpecting() &&
		l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1])
	if isDigit(c) || signedNumber {
		return l.scanNumber()
	}
	if isAlpha(c) || c == '_' {
		return l.scanIdent(), nil
	}
	if tok, ok := l.scanOperator(); ok {
		return tok, nil
	}

	return Token{}, errs.LexError(start, "unexpected character %q", c)
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
