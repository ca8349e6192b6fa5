package parser

import (
	"github.com/randalmurphal/exprlang/pkg/ast"
	"github.com/randalmurphal/exprlang/pkg/errs"
	"github.com/randalmurphal/exprlang/pkg/operator"
	"github.com/randalmurphal/exprlang/pkg/token"
)

// Parser consumes a token.Lexer and produces an *ast.Node tree. It
// consults an operator.Table for precedence, which keeps the table a
// single source of truth between parser and evaluator. operator.Table
// has no exported way to add operators, and Redirect keeps an entry's
// precedence.
type Parser struct {
	lex   *token.Lexer
	table *operator.Table
}

// New creates a Parser over src, consulting table for operator
// precedence. Pass operator.DefaultTable() for the engine's builtin
// operators.
func New(src string, table *operator.Table) *Parser {
	return &Parser{lex: token.New(src), table: table}
}

// Parse parses src in its entirety and returns the resulting AST, or
// a *errs.Error of Kind Lex or Parse on failure.
func Parse(src string, table *operator.Table) (*ast.Node, error) {
	return New(src, table).Parse()
}

// Parse runs the parser to completion, requiring the token stream to
// be fully consumed.
func (p *Parser) Parse() (*ast.Node, error) {
	return p.parseProgram()
}

func noneNode(offset int) *ast.Node {
	return &ast.Node{Kind: ast.None, Offset: offset}
}

// parseProgram implements the statement level: zero or more
// expressions separated by ';', trailing ';' permitted. A ';' with no
// preceding expression (leading, consecutive, or at end) is a no-op
// that contributes a None node to the chain. An empty program yields
// a bare None node; a single statement is returned unwrapped; two or
// more are wrapped in a Chain.
func (p *Parser) parseProgram() (*ast.Node, error) {
	var stmts []*ast.Node

	for {
		tok, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == token.SEMI {
			stmts = append(stmts, noneNode(tok.Offset))
			if _, err := p.lex.Next(); err != nil {
				return nil, err
			}
			continue
		}

		expr, err := p.parseExpression(operator.PrecAssign)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, expr)

		tok, err = p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.SEMI {
			if _, err := p.lex.Next(); err != nil {
				return nil, err
			}
			continue
		}
		if tok.Kind == token.EOF {
			break
		}
		return nil, errs.ParseError(tok.Offset, "expected ';' or end of input, found %s", describe(tok))
	}

	switch len(stmts) {
	case 0:
		return noneNode(0), nil
	case 1:
		return stmts[0], nil
	default:
		return &ast.Node{Kind: ast.Chain, Statements: stmts, Offset: stmts[0].Offset}, nil
	}
}

// parseExpression parses one expression, consuming infix operators
// whose precedence is at least minPrec. Recursing with min_prec =
// current operator's precedence (not +1) gives uniform right-to-left
// associativity.
func (p *Parser) parseExpression(minPrec int) (*ast.Node, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}

		switch tok.Kind {
		case token.OP:
			entry, ok := p.table.Binary(tok.Lexeme)
			if !ok || entry.Precedence < minPrec {
				return left, nil
			}
			if operator.IsAssignment(tok.Lexeme) && left.Kind != ast.Reference {
				return nil, errs.ParseError(left.Offset, "assignment target must be a reference")
			}
			if _, err := p.lex.Next(); err != nil {
				return nil, err
			}
			right, err := p.parseExpression(entry.Precedence)
			if err != nil {
				return nil, err
			}
			left = &ast.Node{Kind: ast.Binary, Op: tok.Lexeme, Left: left, Right: right, Offset: left.Offset}

		case token.QUESTION:
			if operator.PrecTernary < minPrec {
				return left, nil
			}
			if _, err := p.lex.Next(); err != nil {
				return nil, err
			}
			thenExpr, err := p.parseExpression(operator.PrecAssign)
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.COLON); err != nil {
				return nil, err
			}
			elseExpr, err := p.parseExpression(operator.PrecTernary)
			if err != nil {
				return nil, err
			}
			left = &ast.Node{Kind: ast.Ternary, Cond: left, Then: thenExpr, Else: elseExpr, Offset: left.Offset}

		case token.LBRACK:
			if operator.PrecIndex < minPrec {
				return left, nil
			}
			if _, err := p.lex.Next(); err != nil {
				return nil, err
			}
			key, err := p.parseExpression(operator.PrecAssign)
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RBRACK); err != nil {
				return nil, err
			}
			left = &ast.Node{Kind: ast.Index, Left: left, Right: key, Offset: left.Offset}

		default:
			return left, nil
		}
	}
}

// parsePrefix parses one prefix production: a literal, unary
// operator, grouping, list/map literal, or identifier/call/None.
func (p *Parser) parsePrefix() (*ast.Node, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case token.NUMBER:
		v, ok := valueFromNumber(tok.Lexeme)
		if !ok {
			return nil, errs.ParseError(tok.Offset, "invalid number literal %q", tok.Lexeme)
		}
		return &ast.Node{Kind: ast.Literal, Literal: v, Offset: tok.Offset}, nil

	case token.BOOL:
		return &ast.Node{Kind: ast.Literal, Literal: boolFromLexeme(tok.Lexeme), Offset: tok.Offset}, nil

	case token.STRING:
		return &ast.Node{Kind: ast.Literal, Literal: stringValue(tok.Lexeme), Offset: tok.Offset}, nil

	case token.IDENT:
		if tok.Lexeme == "None" {
			return &ast.Node{Kind: ast.None, Offset: tok.Offset}, nil
		}
		next, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if next.Kind == token.LPAREN {
			return p.parseCall(tok)
		}
		return &ast.Node{Kind: ast.Reference, Name: tok.Lexeme, Offset: tok.Offset}, nil

	case token.OP:
		entry, ok := p.table.Unary(tok.Lexeme)
		if !ok {
			return nil, errs.ParseError(tok.Offset, "unexpected operator %q", tok.Lexeme)
		}
		operand, err := p.parseExpression(entry.Precedence)
		if err != nil {
			return nil, err
		}
		return &ast.Node{Kind: ast.Unary, Op: tok.Lexeme, Left: operand, Offset: tok.Offset}, nil

	case token.LPAREN:
		inner, err := p.parseExpression(operator.PrecAssign)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil

	case token.LBRACK:
		return p.parseList(tok)

	case token.LBRACE:
		return p.parseMap(tok)

	default:
		return nil, errs.ParseError(tok.Offset, "expected expression, found %s", describe(tok))
	}
}

func (p *Parser) parseCall(name token.Token) (*ast.Node, error) {
	if _, err := p.lex.Next(); err != nil { // consume '('
		return nil, err
	}

	var args []*ast.Node
	tok, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.RPAREN {
		for {
			arg, err := p.parseExpression(operator.PrecAssign)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			tok, err = p.lex.Peek()
			if err != nil {
				return nil, err
			}
			if tok.Kind != token.COMMA {
				break
			}
			if _, err := p.lex.Next(); err != nil {
				return nil, err
			}
			after, err := p.lex.Peek()
			if err != nil {
				return nil, err
			}
			if after.Kind == token.RPAREN {
				return nil, errs.ParseError(after.Offset, "trailing comma not allowed in call arguments")
			}
		}
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Node{Kind: ast.Call, Name: name.Lexeme, Elements: args, Offset: name.Offset}, nil
}

func (p *Parser) parseList(open token.Token) (*ast.Node, error) {
	var elems []*ast.Node
	tok, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.RBRACK {
		for {
			e, err := p.parseExpression(operator.PrecAssign)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)

			tok, err = p.lex.Peek()
			if err != nil {
				return nil, err
			}
			if tok.Kind != token.COMMA {
				break
			}
			if _, err := p.lex.Next(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect(token.RBRACK); err != nil {
		return nil, err
	}
	return &ast.Node{Kind: ast.List, Elements: elems, Offset: open.Offset}, nil
}

func (p *Parser) parseMap(open token.Token) (*ast.Node, error) {
	var pairs []ast.Pair
	tok, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.RBRACE {
		for {
			key, err := p.parseExpression(operator.PrecAssign)
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.COLON); err != nil {
				return nil, err
			}
			val, err := p.parseExpression(operator.PrecAssign)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, ast.Pair{Key: key, Value: val})

			tok, err = p.lex.Peek()
			if err != nil {
				return nil, err
			}
			if tok.Kind != token.COMMA {
				break
			}
			if _, err := p.lex.Next(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.Node{Kind: ast.Map, Pairs: pairs, Offset: open.Offset}, nil
}

// expect consumes the next token, requiring it to have kind k.
func (p *Parser) expect(k token.Kind) error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	if tok.Kind != k {
		return errs.ParseError(tok.Offset, "expected %s, found %s", k, describe(tok))
	}
	return nil
}

func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of input"
	}
	if tok.Lexeme == "" {
		return tok.Kind.String()
	}
	return tok.Kind.String() + " " + tok.Lexeme
}
