package ast

import (
	"bytes"
	"strings"

	"github.com/LandaMm/PL-interpreter/pkg/token"
)

type (
	// ExpressionStatement wraps an expression evaluated for effect.
	ExpressionStatement struct {
		Token token.Token
		Expr  Expr
	}

	// VariableDeclaration binds Name in the current scope; IsConst marks it
	// constant. Init is nil when the declaration has no initializer, in
	// which case the binding starts out Null.
	VariableDeclaration struct {
		Token   token.Token
		Name    string
		Init    Expr
		IsConst bool
	}

	// FunctionDeclaration binds a Function value as a constant under Name in
	// the current scope.
	FunctionDeclaration struct {
		Token  token.Token
		Name   string
		Params []Param
		Body   *BlockStatement
	}

	// IfStatement; Alt is nil when there is no else branch.
	IfStatement struct {
		Token token.Token
		Cond  Expr
		Body  *BlockStatement
		Alt   Stmt // *BlockStatement or *IfStatement (else if), or nil
	}

	// WhileStatement re-evaluates Cond before each iteration of Body; Body
	// shares the enclosing scope.
	WhileStatement struct {
		Token token.Token
		Cond  Expr
		Body  *BlockStatement
	}

	// ReturnStatement short-circuits the enclosing block.
	ReturnStatement struct {
		Token token.Token
		Expr  Expr // nil means return null
	}

	// ClassDeclaration binds a Class value as a constant under Name.
	ClassDeclaration struct {
		Token      token.Token
		Name       string
		Superclass *Identifier // nil if none
		Properties []PropertyDefinition
		Methods    []MethodDefinition
	}
)

func (*ExpressionStatement) stmtNode() {}
func (*VariableDeclaration) stmtNode() {}
func (*FunctionDeclaration) stmtNode() {}
func (*IfStatement) stmtNode()         {}
func (*WhileStatement) stmtNode()      {}
func (*ReturnStatement) stmtNode()     {}
func (*ClassDeclaration) stmtNode()    {}

func (n *ExpressionStatement) TokenLiteral() string { return n.Token.Literal }
func (n *VariableDeclaration) TokenLiteral() string { return n.Token.Literal }
func (n *FunctionDeclaration) TokenLiteral() string { return n.Token.Literal }
func (n *IfStatement) TokenLiteral() string         { return n.Token.Literal }
func (n *WhileStatement) TokenLiteral() string      { return n.Token.Literal }
func (n *ReturnStatement) TokenLiteral() string     { return n.Token.Literal }
func (n *ClassDeclaration) TokenLiteral() string    { return n.Token.Literal }

func (n *ExpressionStatement) Pos() token.Position { return n.Token.Pos }
func (n *VariableDeclaration) Pos() token.Position { return n.Token.Pos }
func (n *FunctionDeclaration) Pos() token.Position { return n.Token.Pos }
func (n *IfStatement) Pos() token.Position         { return n.Token.Pos }
func (n *WhileStatement) Pos() token.Position      { return n.Token.Pos }
func (n *ReturnStatement) Pos() token.Position     { return n.Token.Pos }
func (n *ClassDeclaration) Pos() token.Position    { return n.Token.Pos }

func (n *ExpressionStatement) String() string {
	if n.Expr == nil {
		return ""
	}
	return n.Expr.String()
}

func (n *VariableDeclaration) String() string {
	kw := "let"
	if n.IsConst {
		kw = "const"
	}
	if n.Init == nil {
		return kw + " " + n.Name
	}
	return kw + " " + n.Name + " = " + n.Init.String()
}

func (n *FunctionDeclaration) String() string {
	parts := make([]string, 0, len(n.Params))
	for _, p := range n.Params {
		parts = append(parts, p.Name)
	}
	return "fn " + n.Name + "(" + strings.Join(parts, ", ") + ") " + n.Body.String()
}

func (n *IfStatement) String() string {
	var buf bytes.Buffer
	buf.WriteString("if (")
	buf.WriteString(n.Cond.String())
	buf.WriteString(") ")
	buf.WriteString(n.Body.String())
	if n.Alt != nil {
		buf.WriteString(" else ")
		buf.WriteString(n.Alt.String())
	}
	return buf.String()
}

func (n *WhileStatement) String() string {
	return "while (" + n.Cond.String() + ") " + n.Body.String()
}

func (n *ReturnStatement) String() string {
	if n.Expr == nil {
		return "return"
	}
	return "return " + n.Expr.String()
}

func (n *ClassDeclaration) String() string {
	s := "class " + n.Name
	if n.Superclass != nil {
		s += " extends " + n.Superclass.Name
	}
	return s
}
