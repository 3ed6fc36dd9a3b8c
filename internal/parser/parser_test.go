package parser

import (
	"testing"

	"github.com/LandaMm/PL-interpreter/internal/lexer"
	"github.com/LandaMm/PL-interpreter/pkg/ast"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	p := New(lexer.New(input))
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v (errs=%v)", err, p.Errors())
	}
	return prog
}

func TestParseVariableDeclaration(t *testing.T) {
	prog := parseProgram(t, `let x = 5; const y = "hi";`)
	if len(prog.Stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Stmts))
	}
	v1, ok := prog.Stmts[0].(*ast.VariableDeclaration)
	if !ok || v1.IsConst || v1.Name != "x" {
		t.Fatalf("unexpected first statement: %#v", prog.Stmts[0])
	}
	v2, ok := prog.Stmts[1].(*ast.VariableDeclaration)
	if !ok || !v2.IsConst || v2.Name != "y" {
		t.Fatalf("unexpected second statement: %#v", prog.Stmts[1])
	}
}

func TestParseClosureExample(t *testing.T) {
	prog := parseProgram(t, `let make = fn(x) { fn(y) { x + y } };`)
	decl := prog.Stmts[0].(*ast.VariableDeclaration)
	outer, ok := decl.Init.(*ast.FuncExpression)
	if !ok {
		t.Fatalf("expected FuncExpression, got %T", decl.Init)
	}
	if len(outer.Params) != 1 || outer.Params[0].Name != "x" {
		t.Fatalf("unexpected params: %#v", outer.Params)
	}
}

func TestParseCompoundMemberAssignment(t *testing.T) {
	prog := parseProgram(t, `o.c += 5;`)
	stmt := prog.Stmts[0].(*ast.ExpressionStatement)
	assign, ok := stmt.Expr.(*ast.AssignmentExpression)
	if !ok {
		t.Fatalf("expected AssignmentExpression, got %T", stmt.Expr)
	}
	if assign.Op != ast.OpAddAssign {
		t.Fatalf("expected OpAddAssign, got %v", assign.Op)
	}
	member, ok := assign.Left.(*ast.MemberExpression)
	if !ok || member.Computed {
		t.Fatalf("expected non-computed member, got %#v", assign.Left)
	}
}

func TestParseClassDeclaration(t *testing.T) {
	prog := parseProgram(t, `
class A {
	fn __new__(self, n) { self.n = n }
}
class B extends A {
	fn __new__(self, n, m) { super(n); self.m = m }
}
`)
	if len(prog.Stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Stmts))
	}
	b := prog.Stmts[1].(*ast.ClassDeclaration)
	if b.Name != "B" || b.Superclass == nil || b.Superclass.Name != "A" {
		t.Fatalf("unexpected class decl: %#v", b)
	}
	if len(b.Methods) != 1 || b.Methods[0].Name != "__new__" {
		t.Fatalf("unexpected methods: %#v", b.Methods)
	}
}

func TestParseIfWhile(t *testing.T) {
	prog := parseProgram(t, `
let s = 0; let i = 0;
while (i < 10) { s += i; i += 1 }
if (s > 0) { s = 1 } else { s = 0 }
`)
	if len(prog.Stmts) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(prog.Stmts))
	}
	if _, ok := prog.Stmts[2].(*ast.WhileStatement); !ok {
		t.Fatalf("expected WhileStatement, got %T", prog.Stmts[2])
	}
	ifs, ok := prog.Stmts[3].(*ast.IfStatement)
	if !ok || ifs.Alt == nil {
		t.Fatalf("expected IfStatement with else, got %#v", prog.Stmts[3])
	}
}

func TestParseObjectLiteral(t *testing.T) {
	prog := parseProgram(t, `const o = { a: 1, b: 2 };`)
	decl := prog.Stmts[0].(*ast.VariableDeclaration)
	obj, ok := decl.Init.(*ast.ObjectExpression)
	if !ok || len(obj.Keys) != 2 {
		t.Fatalf("unexpected object literal: %#v", decl.Init)
	}
}
