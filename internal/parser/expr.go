package parser

import (
	"strconv"

	"github.com/LandaMm/PL-interpreter/pkg/ast"
	"github.com/LandaMm/PL-interpreter/pkg/token"
)

func (p *Parser) parseExpression(precedence int) (ast.Expr, error) {
	prefix, ok := p.prefixParseFns[p.cur.Type]
	if !ok {
		return nil, p.errorf("unexpected token %s", p.cur.Type)
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for !p.curIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.cur.Type]
		if !ok {
			return left, nil
		}
		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}

	// Assignment binds at the statement level: if the next token is an
	// assignment operator and left is a valid target, fold it in here so
	// that `x = y` and `x.p += y` parse as a single expression. Restricted
	// to the outermost call (precedence == LOWEST) so that assignment never
	// gets folded into a binary operator's operand, e.g. `x + y = z`.
	if op, isAssign := assignOp(p.cur.Type); precedence == LOWEST && isAssign && isAssignable(left) {
		tok := p.cur
		p.next()
		right, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentExpression{Token: tok, Left: left, Op: op, Right: right}, nil
	}

	return left, nil
}

func (p *Parser) peekPrecedenceOf(t token.Type) int {
	if prec, ok := precedences[t]; ok {
		return prec
	}
	return LOWEST
}

// peekPrecedence operates against p.cur because infix parse functions are
// dispatched from the token currently under the cursor (the operator
// itself): every prefix parse function has already called next() past its
// own token before returning.
func (p *Parser) peekPrecedence() int {
	return p.peekPrecedenceOf(p.cur.Type)
}

func isAssignable(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return true
	default:
		return false
	}
}

func assignOp(t token.Type) (ast.AssignmentOperator, bool) {
	switch t {
	case token.ASSIGN:
		return ast.OpAssign, true
	case token.PLUS_ASSIGN:
		return ast.OpAddAssign, true
	case token.MINUS_ASSIGN:
		return ast.OpSubAssign, true
	case token.STAR_ASSIGN:
		return ast.OpMulAssign, true
	case token.SLASH_ASSIGN:
		return ast.OpDivAssign, true
	case token.PERCENT_ASSIGN:
		return ast.OpModAssign, true
	default:
		return 0, false
	}
}

func (p *Parser) parseIdentifier() (ast.Expr, error) {
	id := &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
	p.next()
	return id, nil
}

func (p *Parser) parseIntegerLiteral() (ast.Expr, error) {
	tok := p.cur
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return nil, p.errorf("invalid integer literal %q", tok.Literal)
	}
	p.next()
	return &ast.IntegerLiteral{Token: tok, Value: v}, nil
}

func (p *Parser) parseDecimalLiteral() (ast.Expr, error) {
	tok := p.cur
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return nil, p.errorf("invalid decimal literal %q", tok.Literal)
	}
	p.next()
	return &ast.DecimalLiteral{Token: tok, Value: v}, nil
}

func (p *Parser) parseStringLiteral() (ast.Expr, error) {
	tok := p.cur
	p.next()
	return &ast.StringLiteral{Token: tok, Value: tok.Literal}, nil
}

func (p *Parser) parseBooleanLiteral() (ast.Expr, error) {
	tok := p.cur
	p.next()
	return &ast.BooleanLiteral{Token: tok, Value: tok.Type == token.TRUE}, nil
}

func (p *Parser) parseNullLiteral() (ast.Expr, error) {
	tok := p.cur
	p.next()
	return &ast.NullLiteral{Token: tok}, nil
}

func (p *Parser) parseUnaryExpression() (ast.Expr, error) {
	tok := p.cur
	var op ast.UnaryOperator
	switch tok.Type {
	case token.PLUS:
		op = ast.UnaryPlus
	case token.MINUS:
		op = ast.UnaryMinus
	case token.BANG:
		op = ast.Negation
	}
	p.next()
	right, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpression{Token: tok, Op: op, Expr: right}, nil
}

func (p *Parser) parseGroupedExpression() (ast.Expr, error) {
	p.next() // consume '('
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseArrayExpression() (ast.Expr, error) {
	tok := p.cur
	p.next() // consume '['
	arr := &ast.ArrayExpression{Token: tok}
	for !p.curIs(token.RBRACKET) {
		item, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		arr.Items = append(arr.Items, item)
		if p.curIs(token.COMMA) {
			p.next()
		}
	}
	if err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return arr, nil
}

func (p *Parser) parseObjectExpression() (ast.Expr, error) {
	tok := p.cur
	p.next() // consume '{'
	obj := &ast.ObjectExpression{Token: tok}
	p.skipSemicolons()
	for !p.curIs(token.RBRACE) {
		if !p.curIs(token.IDENT) && !p.curIs(token.STRING) {
			return nil, p.errorf("expected object key, got %s", p.cur.Type)
		}
		key := p.cur.Literal
		p.next()
		if err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		value, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		obj.Keys = append(obj.Keys, key)
		obj.Values = append(obj.Values, value)
		if p.curIs(token.COMMA) {
			p.next()
			p.skipSemicolons()
		}
	}
	if err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return obj, nil
}

func (p *Parser) parseFuncExpression() (ast.Expr, error) {
	tok := p.cur
	p.next() // consume 'fn'
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	return &ast.FuncExpression{Token: tok, Params: params, Body: body}, nil
}

func (p *Parser) parseClassLiteral() (ast.Expr, error) {
	tok := p.cur
	p.next() // consume 'class'
	super, err := p.parseOptionalSuperclass()
	if err != nil {
		return nil, err
	}
	props, methods, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}
	return &ast.ClassLiteral{Token: tok, Superclass: super, Properties: props, Methods: methods}, nil
}

func (p *Parser) parseBinaryExpression(left ast.Expr) (ast.Expr, error) {
	tok := p.cur
	op, err := binOpFor(tok.Type)
	if err != nil {
		return nil, p.errorf("%s", err)
	}
	prec := p.peekPrecedenceOf(tok.Type)
	p.next()
	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpression{Token: tok, Left: left, Op: op, Right: right}, nil
}

func (p *Parser) parseLogicalExpression(left ast.Expr) (ast.Expr, error) {
	tok := p.cur
	var op ast.LogicalOperator
	if tok.Type == token.AND {
		op = ast.LogicalAnd
	} else {
		op = ast.LogicalOr
	}
	prec := p.peekPrecedenceOf(tok.Type)
	p.next()
	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	return &ast.LogicalExpression{Token: tok, Left: left, Op: op, Right: right}, nil
}

func (p *Parser) parseCallExpression(callee ast.Expr) (ast.Expr, error) {
	tok := p.cur
	p.next() // consume '('
	call := &ast.CallExpression{Token: tok, Callee: callee}
	for !p.curIs(token.RPAREN) {
		arg, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if p.curIs(token.COMMA) {
			p.next()
		}
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return call, nil
}

func (p *Parser) parseDotExpression(obj ast.Expr) (ast.Expr, error) {
	tok := p.cur
	p.next() // consume '.'
	if !p.curIs(token.IDENT) {
		return nil, p.errorf("expected property name, got %s", p.cur.Type)
	}
	prop := &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
	p.next()
	return &ast.MemberExpression{Token: tok, Obj: obj, Prop: prop, Computed: false}, nil
}

func (p *Parser) parseIndexExpression(obj ast.Expr) (ast.Expr, error) {
	tok := p.cur
	p.next() // consume '['
	idx, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.MemberExpression{Token: tok, Obj: obj, Prop: idx, Computed: true}, nil
}

func binOpFor(t token.Type) (ast.BinaryOperator, error) {
	switch t {
	case token.PLUS:
		return ast.Plus, nil
	case token.MINUS:
		return ast.Minus, nil
	case token.STAR:
		return ast.Multiply, nil
	case token.SLASH:
		return ast.Divide, nil
	case token.PERCENT:
		return ast.Modulo, nil
	case token.LT:
		return ast.LessThan, nil
	case token.GT:
		return ast.GreaterThan, nil
	case token.EQ:
		return ast.IsEquals, nil
	case token.NOT_EQ:
		return ast.NotEquals, nil
	default:
		return 0, errUnknownOperator(t)
	}
}

type errUnknownOperator token.Type

func (e errUnknownOperator) Error() string {
	return "unknown binary operator " + token.Type(e).String()
}
