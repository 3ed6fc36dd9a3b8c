// Package parser builds an AST (pkg/ast) from the token stream produced by
// internal/lexer. The evaluator never imports this package directly; it is
// wired together only by the driver (cmd/plinterp).
package parser

import (
	"fmt"

	"github.com/LandaMm/PL-interpreter/internal/lexer"
	"github.com/LandaMm/PL-interpreter/pkg/ast"
	"github.com/LandaMm/PL-interpreter/pkg/token"
)

// precedence levels, lowest to highest.
const (
	_ int = iota
	LOWEST
	LOGICAL     // and, or
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // -x !x
	CALL        // fn(...)
	INDEX       // arr[i] obj.prop
)

var precedences = map[token.Type]int{
	token.AND:      LOGICAL,
	token.OR:       LOGICAL,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.STAR:     PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.LPAREN:   CALL,
	token.DOT:      INDEX,
	token.LBRACKET: INDEX,
}

type (
	prefixParseFn func() (ast.Expr, error)
	infixParseFn  func(ast.Expr) (ast.Expr, error)
)

// Parser is a recursive-descent, Pratt-style expression parser.
type Parser struct {
	l *lexer.Lexer

	cur  token.Token
	peek token.Token

	errs []error

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New returns a Parser reading tokens from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.IDENT:    p.parseIdentifier,
		token.INT:      p.parseIntegerLiteral,
		token.DECIMAL:  p.parseDecimalLiteral,
		token.STRING:   p.parseStringLiteral,
		token.TRUE:     p.parseBooleanLiteral,
		token.FALSE:    p.parseBooleanLiteral,
		token.NIL:      p.parseNullLiteral,
		token.BANG:     p.parseUnaryExpression,
		token.MINUS:    p.parseUnaryExpression,
		token.PLUS:     p.parseUnaryExpression,
		token.LPAREN:   p.parseGroupedExpression,
		token.LBRACKET: p.parseArrayExpression,
		token.LBRACE:   p.parseObjectExpression,
		token.FN:       p.parseFuncExpression,
		token.CLASS:    p.parseClassLiteral,
	}

	p.infixParseFns = map[token.Type]infixParseFn{
		token.PLUS:     p.parseBinaryExpression,
		token.MINUS:    p.parseBinaryExpression,
		token.STAR:     p.parseBinaryExpression,
		token.SLASH:    p.parseBinaryExpression,
		token.PERCENT:  p.parseBinaryExpression,
		token.LT:       p.parseBinaryExpression,
		token.GT:       p.parseBinaryExpression,
		token.EQ:       p.parseBinaryExpression,
		token.NOT_EQ:   p.parseBinaryExpression,
		token.AND:      p.parseLogicalExpression,
		token.OR:       p.parseLogicalExpression,
		token.LPAREN:   p.parseCallExpression,
		token.DOT:      p.parseDotExpression,
		token.LBRACKET: p.parseIndexExpression,
	}

	p.next()
	p.next()
	return p
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []error { return p.errs }

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek.Type == t }

func (p *Parser) expect(t token.Type) error {
	if !p.curIs(t) {
		return p.errorf("expected %s, got %s", t, p.cur.Type)
	}
	p.next()
	return nil
}

// SyntaxError is a parse error at a specific source position, structured so
// a driver can render it with context (internal/errors) instead of a plain
// one-line message.
type SyntaxError struct {
	Pos token.Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Msg)
}

func (p *Parser) errorf(format string, args ...any) error {
	err := &SyntaxError{Pos: p.cur.Pos, Msg: fmt.Sprintf(format, args...)}
	p.errs = append(p.errs, err)
	return err
}

// ParseProgram parses a whole script into a *ast.Program.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.curIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	return prog, nil
}

func (p *Parser) skipSemicolons() {
	for p.curIs(token.SEMICOLON) {
		p.next()
	}
}
