package parser

import (
	"github.com/LandaMm/PL-interpreter/pkg/ast"
	"github.com/LandaMm/PL-interpreter/pkg/token"
)

func (p *Parser) parseStatement() (ast.Stmt, error) {
	var stmt ast.Stmt
	var err error

	switch p.cur.Type {
	case token.LET, token.CONST:
		stmt, err = p.parseVariableDeclaration()
	case token.FN:
		if p.peekIs(token.IDENT) {
			stmt, err = p.parseFunctionDeclaration()
		} else {
			stmt, err = p.parseExpressionStatement()
		}
	case token.IF:
		stmt, err = p.parseIfStatement()
	case token.WHILE:
		stmt, err = p.parseWhileStatement()
	case token.RETURN:
		stmt, err = p.parseReturnStatement()
	case token.CLASS:
		stmt, err = p.parseClassDeclaration()
	default:
		stmt, err = p.parseExpressionStatement()
	}
	if err != nil {
		return nil, err
	}
	p.skipSemicolons()
	return stmt, nil
}

func (p *Parser) parseBlockStatement() (*ast.BlockStatement, error) {
	block := &ast.BlockStatement{Token: p.cur}
	if err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	p.skipSemicolons()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	if err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) parseVariableDeclaration() (ast.Stmt, error) {
	tok := p.cur
	isConst := p.curIs(token.CONST)
	p.next()

	if !p.curIs(token.IDENT) {
		return nil, p.errorf("expected identifier, got %s", p.cur.Type)
	}
	name := p.cur.Literal
	p.next()

	decl := &ast.VariableDeclaration{Token: tok, Name: name, IsConst: isConst}
	if p.curIs(token.ASSIGN) {
		p.next()
		init, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		decl.Init = init
	}
	return decl, nil
}

func (p *Parser) parseParamList() ([]ast.Param, error) {
	var params []ast.Param
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	for !p.curIs(token.RPAREN) {
		if !p.curIs(token.IDENT) {
			return nil, p.errorf("expected parameter name, got %s", p.cur.Type)
		}
		param := ast.Param{Name: p.cur.Literal}
		p.next()
		if p.curIs(token.ASSIGN) {
			p.next()
			def, err := p.parseExpression(LOWEST)
			if err != nil {
				return nil, err
			}
			param.Default = def
		}
		params = append(params, param)
		if p.curIs(token.COMMA) {
			p.next()
		}
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseFunctionDeclaration() (ast.Stmt, error) {
	tok := p.cur
	p.next() // consume 'fn'
	name := p.cur.Literal
	p.next()

	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{Token: tok, Name: name, Params: params, Body: body}, nil
}

func (p *Parser) parseIfStatement() (ast.Stmt, error) {
	tok := p.cur
	p.next()
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStatement{Token: tok, Cond: cond, Body: body}
	if p.curIs(token.ELSE) {
		p.next()
		if p.curIs(token.IF) {
			alt, err := p.parseIfStatement()
			if err != nil {
				return nil, err
			}
			stmt.Alt = alt
		} else {
			alt, err := p.parseBlockStatement()
			if err != nil {
				return nil, err
			}
			stmt.Alt = alt
		}
	}
	return stmt, nil
}

func (p *Parser) parseWhileStatement() (ast.Stmt, error) {
	tok := p.cur
	p.next()
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Token: tok, Cond: cond, Body: body}, nil
}

func (p *Parser) parseReturnStatement() (ast.Stmt, error) {
	tok := p.cur
	p.next()
	stmt := &ast.ReturnStatement{Token: tok}
	if !p.curIs(token.SEMICOLON) && !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		stmt.Expr = expr
	}
	return stmt, nil
}

func (p *Parser) parseExpressionStatement() (ast.Stmt, error) {
	tok := p.cur
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Token: tok, Expr: expr}, nil
}

// parseClassDeclaration parses `class Name [extends Super] { ... }` as a
// statement, binding Name in the enclosing scope.
func (p *Parser) parseClassDeclaration() (ast.Stmt, error) {
	tok := p.cur
	p.next() // consume 'class'
	if !p.curIs(token.IDENT) {
		return nil, p.errorf("expected class name, got %s", p.cur.Type)
	}
	name := p.cur.Literal
	p.next()

	super, err := p.parseOptionalSuperclass()
	if err != nil {
		return nil, err
	}
	props, methods, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}
	return &ast.ClassDeclaration{
		Token: tok, Name: name, Superclass: super,
		Properties: props, Methods: methods,
	}, nil
}

func (p *Parser) parseOptionalSuperclass() (*ast.Identifier, error) {
	if !p.curIs(token.EXTENDS) {
		return nil, nil
	}
	p.next()
	if !p.curIs(token.IDENT) {
		return nil, p.errorf("expected superclass name, got %s", p.cur.Type)
	}
	super := &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
	p.next()
	return super, nil
}

// parseClassBody parses the `{ ... }` body shared by class declarations and
// class literals: a sequence of property and method definitions, each
// optionally prefixed by `static`.
func (p *Parser) parseClassBody() ([]ast.PropertyDefinition, []ast.MethodDefinition, error) {
	var props []ast.PropertyDefinition
	var methods []ast.MethodDefinition

	if err := p.expect(token.LBRACE); err != nil {
		return nil, nil, err
	}
	p.skipSemicolons()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		isStatic := false
		if p.curIs(token.STATIC) {
			isStatic = true
			p.next()
		}
		if p.curIs(token.FN) {
			tok := p.cur
			p.next()
			if !p.curIs(token.IDENT) {
				return nil, nil, p.errorf("expected method name, got %s", p.cur.Type)
			}
			name := p.cur.Literal
			p.next()
			params, err := p.parseParamList()
			if err != nil {
				return nil, nil, err
			}
			body, err := p.parseBlockStatement()
			if err != nil {
				return nil, nil, err
			}
			methods = append(methods, ast.MethodDefinition{
				Token: tok, Name: name, Params: params, Body: body, IsStatic: isStatic,
			})
		} else {
			if !p.curIs(token.IDENT) {
				return nil, nil, p.errorf("expected property name, got %s", p.cur.Type)
			}
			tok := p.cur
			name := p.cur.Literal
			p.next()
			var value ast.Expr
			if p.curIs(token.ASSIGN) || p.curIs(token.COLON) {
				p.next()
				v, err := p.parseExpression(LOWEST)
				if err != nil {
					return nil, nil, err
				}
				value = v
			}
			props = append(props, ast.PropertyDefinition{
				Token: tok, Name: name, Value: value, IsStatic: isStatic,
			})
		}
		p.skipSemicolons()
	}
	if err := p.expect(token.RBRACE); err != nil {
		return nil, nil, err
	}
	return props, methods, nil
}
