package lexer

import (
	"testing"

	"github.com/LandaMm/PL-interpreter/pkg/token"
)

func TestNextTokenBasic(t *testing.T) {
	input := `let x = 5 + 3.5;
if (x < 10) { x += 1 }
// a comment
"hi" 'world'`

	want := []struct {
		typ token.Type
		lit string
	}{
		{token.LET, "let"},
		{token.IDENT, "x"},
		{token.ASSIGN, "="},
		{token.INT, "5"},
		{token.PLUS, "+"},
		{token.DECIMAL, "3.5"},
		{token.SEMICOLON, ";"},
		{token.IF, "if"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.LT, "<"},
		{token.INT, "10"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.IDENT, "x"},
		{token.PLUS_ASSIGN, "+="},
		{token.INT, "1"},
		{token.RBRACE, "}"},
		{token.STRING, "hi"},
		{token.STRING, "world"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w.typ || tok.Literal != w.lit {
			t.Fatalf("token %d: got %s(%q), want %s(%q)", i, tok.Type, tok.Literal, w.typ, w.lit)
		}
	}
}

func TestNextTokenOperators(t *testing.T) {
	input := `== != -= *= /= %= !`
	want := []token.Type{token.EQ, token.NOT_EQ, token.MINUS_ASSIGN, token.STAR_ASSIGN, token.SLASH_ASSIGN, token.PERCENT_ASSIGN, token.BANG, token.EOF}
	l := New(input)
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w {
			t.Fatalf("token %d: got %s, want %s", i, tok.Type, w)
		}
	}
}

func TestNextTokenPositions(t *testing.T) {
	input := "let x\n= 1"
	l := New(input)
	tok := l.NextToken() // let
	if tok.Pos.Line != 1 {
		t.Fatalf("expected line 1, got %d", tok.Pos.Line)
	}
	l.NextToken() // x
	tok = l.NextToken() // =
	if tok.Pos.Line != 2 {
		t.Fatalf("expected line 2, got %d", tok.Pos.Line)
	}
}
