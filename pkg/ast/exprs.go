package ast

import (
	"bytes"
	"strings"

	"github.com/LandaMm/PL-interpreter/pkg/token"
)

// BinaryOperator enumerates the binary operators the evaluator understands.
type BinaryOperator int

const (
	Plus BinaryOperator = iota
	Minus
	Multiply
	Divide
	Modulo
	LessThan
	GreaterThan
	IsEquals
	NotEquals
)

// UnaryOperator enumerates the unary prefix operators.
type UnaryOperator int

const (
	UnaryPlus UnaryOperator = iota
	UnaryMinus
	Negation
)

// LogicalOperator enumerates the non-short-circuiting logical operators.
type LogicalOperator int

const (
	LogicalAnd LogicalOperator = iota
	LogicalOr
)

// AssignmentOperator enumerates the simple and compound assignment
// operators.
type AssignmentOperator int

const (
	OpAssign AssignmentOperator = iota
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpModAssign
)

type (
	// IntegerLiteral is a signed machine-width integer literal.
	IntegerLiteral struct {
		Token token.Token
		Value int64
	}

	// DecimalLiteral is a 64-bit floating point literal.
	DecimalLiteral struct {
		Token token.Token
		Value float64
	}

	// StringLiteral is a UTF-8 string literal.
	StringLiteral struct {
		Token token.Token
		Value string
	}

	// NullLiteral produces the Null value.
	NullLiteral struct {
		Token token.Token
	}

	// BooleanLiteral produces a Boolean value.
	BooleanLiteral struct {
		Token token.Token
		Value bool
	}

	// Identifier looks up a name in the current environment chain.
	Identifier struct {
		Token token.Token
		Name  string
	}

	// ArrayExpression evaluates its items left-to-right into an Array value.
	ArrayExpression struct {
		Token token.Token // the '[' token
		Items []Expr
	}

	// ObjectExpression evaluates to an Object value; sugar used by scenarios
	// such as `{ a: 1 }`.
	ObjectExpression struct {
		Token token.Token // the '{' token
		Keys  []string
		Values []Expr
	}

	// BinaryExpression is a binary operator applied to two operands.
	BinaryExpression struct {
		Token token.Token // the operator token
		Left  Expr
		Op    BinaryOperator
		Right Expr
	}

	// UnaryExpression is a prefix unary operator applied to one operand.
	UnaryExpression struct {
		Token token.Token
		Op    UnaryOperator
		Expr  Expr
	}

	// LogicalExpression is `and`/`or`; both operands are always evaluated.
	LogicalExpression struct {
		Token token.Token
		Left  Expr
		Op    LogicalOperator
		Right Expr
	}

	// AssignmentExpression covers `target = expr`, `target op= expr` for a
	// simple identifier or a member/index target.
	AssignmentExpression struct {
		Token token.Token
		Left  Expr // *Identifier, *MemberExpression
		Op    AssignmentOperator
		Right Expr
	}

	// CallExpression invokes callee with args, left-to-right.
	CallExpression struct {
		Token  token.Token // the '(' token
		Callee Expr
		Args   []Expr
	}

	// MemberExpression is `obj.prop` (Computed=false) or `obj[key]`
	// (Computed=true).
	MemberExpression struct {
		Token    token.Token
		Obj      Expr
		Prop     Expr // *Identifier when !Computed, arbitrary expr when Computed
		Computed bool
	}

	// FuncExpression is a function literal: `fn(params) { body }`.
	FuncExpression struct {
		Token  token.Token
		Params []Param
		Body   *BlockStatement
	}

	// ClassLiteral is an inline, unnamed class expression; ClassDeclaration
	// is the statement form with the same fields plus a name it is bound to.
	ClassLiteral struct {
		Token      token.Token
		Superclass *Identifier // nil if none
		Properties []PropertyDefinition
		Methods    []MethodDefinition
	}
)

// Param is a formal parameter, with an optional pre-evaluated-at-declaration
// default expression (see FunctionDeclaration semantics).
type Param struct {
	Name    string
	Default Expr // nil if no default
}

// PropertyDefinition is a class instance/static field.
type PropertyDefinition struct {
	Token    token.Token
	Name     string
	Value    Expr
	IsStatic bool
}

// MethodDefinition is a class instance/static method.
type MethodDefinition struct {
	Token    token.Token
	Name     string
	Params   []Param
	Body     *BlockStatement
	IsStatic bool
}

func (*IntegerLiteral) exprNode()       {}
func (*DecimalLiteral) exprNode()       {}
func (*StringLiteral) exprNode()        {}
func (*NullLiteral) exprNode()          {}
func (*BooleanLiteral) exprNode()       {}
func (*Identifier) exprNode()           {}
func (*ArrayExpression) exprNode()      {}
func (*ObjectExpression) exprNode()     {}
func (*BinaryExpression) exprNode()     {}
func (*UnaryExpression) exprNode()      {}
func (*LogicalExpression) exprNode()    {}
func (*AssignmentExpression) exprNode() {}
func (*CallExpression) exprNode()       {}
func (*MemberExpression) exprNode()     {}
func (*FuncExpression) exprNode()       {}
func (*ClassLiteral) exprNode()         {}

func (n *IntegerLiteral) TokenLiteral() string       { return n.Token.Literal }
func (n *DecimalLiteral) TokenLiteral() string        { return n.Token.Literal }
func (n *StringLiteral) TokenLiteral() string          { return n.Token.Literal }
func (n *NullLiteral) TokenLiteral() string            { return n.Token.Literal }
func (n *BooleanLiteral) TokenLiteral() string         { return n.Token.Literal }
func (n *Identifier) TokenLiteral() string             { return n.Token.Literal }
func (n *ArrayExpression) TokenLiteral() string        { return n.Token.Literal }
func (n *ObjectExpression) TokenLiteral() string       { return n.Token.Literal }
func (n *BinaryExpression) TokenLiteral() string       { return n.Token.Literal }
func (n *UnaryExpression) TokenLiteral() string        { return n.Token.Literal }
func (n *LogicalExpression) TokenLiteral() string      { return n.Token.Literal }
func (n *AssignmentExpression) TokenLiteral() string   { return n.Token.Literal }
func (n *CallExpression) TokenLiteral() string         { return n.Token.Literal }
func (n *MemberExpression) TokenLiteral() string       { return n.Token.Literal }
func (n *FuncExpression) TokenLiteral() string         { return n.Token.Literal }
func (n *ClassLiteral) TokenLiteral() string           { return n.Token.Literal }

func (n *IntegerLiteral) Pos() token.Position       { return n.Token.Pos }
func (n *DecimalLiteral) Pos() token.Position        { return n.Token.Pos }
func (n *StringLiteral) Pos() token.Position          { return n.Token.Pos }
func (n *NullLiteral) Pos() token.Position            { return n.Token.Pos }
func (n *BooleanLiteral) Pos() token.Position         { return n.Token.Pos }
func (n *Identifier) Pos() token.Position             { return n.Token.Pos }
func (n *ArrayExpression) Pos() token.Position        { return n.Token.Pos }
func (n *ObjectExpression) Pos() token.Position       { return n.Token.Pos }
func (n *BinaryExpression) Pos() token.Position       { return n.Token.Pos }
func (n *UnaryExpression) Pos() token.Position        { return n.Token.Pos }
func (n *LogicalExpression) Pos() token.Position      { return n.Token.Pos }
func (n *AssignmentExpression) Pos() token.Position   { return n.Token.Pos }
func (n *CallExpression) Pos() token.Position         { return n.Token.Pos }
func (n *MemberExpression) Pos() token.Position       { return n.Token.Pos }
func (n *FuncExpression) Pos() token.Position         { return n.Token.Pos }
func (n *ClassLiteral) Pos() token.Position           { return n.Token.Pos }

func (n *IntegerLiteral) String() string { return n.Token.Literal }
func (n *DecimalLiteral) String() string { return n.Token.Literal }
func (n *StringLiteral) String() string  { return n.Token.Literal }
func (n *NullLiteral) String() string    { return "null" }
func (n *BooleanLiteral) String() string { return n.Token.Literal }
func (n *Identifier) String() string     { return n.Name }

func (n *ArrayExpression) String() string {
	parts := make([]string, 0, len(n.Items))
	for _, it := range n.Items {
		parts = append(parts, it.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (n *ObjectExpression) String() string {
	var buf bytes.Buffer
	buf.WriteString("{ ")
	for i, k := range n.Keys {
		buf.WriteString(k)
		buf.WriteString(": ")
		buf.WriteString(n.Values[i].String())
		if i < len(n.Keys)-1 {
			buf.WriteString(", ")
		}
	}
	buf.WriteString(" }")
	return buf.String()
}

func (n *BinaryExpression) String() string {
	return "(" + n.Left.String() + " " + n.Token.Literal + " " + n.Right.String() + ")"
}

func (n *UnaryExpression) String() string {
	return "(" + n.Token.Literal + n.Expr.String() + ")"
}

func (n *LogicalExpression) String() string {
	return "(" + n.Left.String() + " " + n.Token.Literal + " " + n.Right.String() + ")"
}

func (n *AssignmentExpression) String() string {
	return n.Left.String() + " " + n.Token.Literal + " " + n.Right.String()
}

func (n *CallExpression) String() string {
	parts := make([]string, 0, len(n.Args))
	for _, a := range n.Args {
		parts = append(parts, a.String())
	}
	return n.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

func (n *MemberExpression) String() string {
	if n.Computed {
		return n.Obj.String() + "[" + n.Prop.String() + "]"
	}
	return n.Obj.String() + "." + n.Prop.String()
}

func (n *FuncExpression) String() string {
	parts := make([]string, 0, len(n.Params))
	for _, p := range n.Params {
		parts = append(parts, p.Name)
	}
	return "fn(" + strings.Join(parts, ", ") + ") " + n.Body.String()
}

func (n *ClassLiteral) String() string {
	return "class"
}
