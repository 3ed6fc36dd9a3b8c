// Package ast defines the abstract syntax tree consumed by the evaluator.
// Nodes are produced by internal/parser from internal/lexer's token stream;
// this package only fixes the shape the evaluator walks.
package ast

import (
	"bytes"

	"github.com/LandaMm/PL-interpreter/pkg/token"
)

// Node is implemented by every AST node.
type Node interface {
	// TokenLiteral returns the literal text of the token most closely
	// associated with the node, used when locating errors.
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expr is implemented by expression nodes: anything that resolves to a
// runtime value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of a parsed script: a sequence of top-level
// statements.
type Program struct {
	Stmts []Stmt
}

func (p *Program) TokenLiteral() string {
	if len(p.Stmts) > 0 {
		return p.Stmts[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() token.Position {
	if len(p.Stmts) > 0 {
		return p.Stmts[0].Pos()
	}
	return token.Position{}
}

func (p *Program) String() string {
	var buf bytes.Buffer
	for _, s := range p.Stmts {
		buf.WriteString(s.String())
		buf.WriteString("\n")
	}
	return buf.String()
}

// BlockStatement groups a sequence of statements sharing the enclosing
// scope (no new environment is introduced by a block on its own).
type BlockStatement struct {
	Token token.Token // the '{' token
	Stmts []Stmt
}

func (bs *BlockStatement) stmtNode()             {}
func (bs *BlockStatement) TokenLiteral() string  { return bs.Token.Literal }
func (bs *BlockStatement) Pos() token.Position   { return bs.Token.Pos }
func (bs *BlockStatement) String() string {
	var buf bytes.Buffer
	buf.WriteString("{ ")
	for _, s := range bs.Stmts {
		buf.WriteString(s.String())
		buf.WriteString(" ")
	}
	buf.WriteString("}")
	return buf.String()
}
