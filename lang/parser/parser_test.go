// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package parser

import (
	"errors"
	"testing"

	"github.com/probechain/go-lox/lang/ast"
	"github.com/probechain/go-lox/lang/diag"
	"github.com/probechain/go-lox/lang/lexer"
	"github.com/probechain/go-lox/lang/token"
	"github.com/probechain/go-lox/lang/value"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

// mustParse scans and parses src, failing the test on any error.
func mustParse(t *testing.T, src string) ast.Expression {
	t.Helper()
	toks, err := lexer.Scan(src)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	expr, err := Parse(toks)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return expr
}

// parseErr scans src (which must scan cleanly) and expects the parse to fail,
// returning the diagnostic.
func parseErr(t *testing.T, src string) *diag.Diagnostic {
	t.Helper()
	toks, err := lexer.Scan(src)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	_, err = Parse(toks)
	if err == nil {
		t.Fatal("expected parse error, but none was reported")
	}
	var d *diag.Diagnostic
	if !errors.As(err, &d) {
		t.Fatalf("error is %T, want *diag.Diagnostic", err)
	}
	return d
}

// wantString parses src and compares the canonical printed form.
func wantString(t *testing.T, src, want string) {
	t.Helper()
	expr := mustParse(t, src)
	if got := expr.String(); got != want {
		t.Errorf("String(%q) = %q, want %q", src, got, want)
	}
}

// ---------------------------------------------------------------------------
// Literals
// ---------------------------------------------------------------------------

func TestParseNumberLiteral(t *testing.T) {
	expr := mustParse(t, "123")
	lit, ok := expr.(*ast.Literal)
	if !ok {
		t.Fatalf("expected *ast.Literal, got %T", expr)
	}
	if lit.Token.Type != token.NUMBER {
		t.Errorf("token type = %s, want NUMBER", lit.Token.Type)
	}
	num, ok := lit.Value.(value.Number)
	if !ok {
		t.Fatalf("value is %T, want value.Number", lit.Value)
	}
	if num != 123 {
		t.Errorf("value = %v, want 123", num)
	}
}

func TestParseStringLiteral(t *testing.T) {
	expr := mustParse(t, `"hello"`)
	lit, ok := expr.(*ast.Literal)
	if !ok {
		t.Fatalf("expected *ast.Literal, got %T", expr)
	}
	str, ok := lit.Value.(value.String)
	if !ok {
		t.Fatalf("value is %T, want value.String", lit.Value)
	}
	if str != "hello" {
		t.Errorf("value = %q, want %q (decoded, no quotes)", str, "hello")
	}
	if lit.Token.Lexeme != `"hello"` {
		t.Errorf("lexeme = %q, want %q (quoted source form)", lit.Token.Lexeme, `"hello"`)
	}
}

func TestParseKeywordLiterals(t *testing.T) {
	cases := []struct {
		src  string
		want value.Value
	}{
		{"true", value.True},
		{"false", value.False},
		{"nil", value.Nil},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			expr := mustParse(t, c.src)
			lit, ok := expr.(*ast.Literal)
			if !ok {
				t.Fatalf("expected *ast.Literal, got %T", expr)
			}
			if lit.Value != c.want {
				t.Errorf("value = %v, want the %s singleton", lit.Value, c.src)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Unary expressions
// ---------------------------------------------------------------------------

func TestParseUnaryMinus(t *testing.T) {
	expr := mustParse(t, "-123")
	un, ok := expr.(*ast.Unary)
	if !ok {
		t.Fatalf("expected *ast.Unary, got %T", expr)
	}
	if un.Token.Type != token.MINUS {
		t.Errorf("operator = %s, want MINUS", un.Token.Type)
	}
	if _, ok := un.Right.(*ast.Literal); !ok {
		t.Fatalf("operand is %T, want *ast.Literal", un.Right)
	}
}

func TestParseUnaryBang(t *testing.T) {
	expr := mustParse(t, "!true")
	un, ok := expr.(*ast.Unary)
	if !ok {
		t.Fatalf("expected *ast.Unary, got %T", expr)
	}
	if un.Token.Type != token.BANG {
		t.Errorf("operator = %s, want BANG", un.Token.Type)
	}
}

// Prefix chains nest to the right: !!x is !(!x).
func TestParseUnaryChains(t *testing.T) {
	wantString(t, "!!true", "(!(!true))")
	wantString(t, "--1", "(-(-1))")
	wantString(t, "-!false", "(-(!false))")
}

// ---------------------------------------------------------------------------
// Binary expressions and precedence
// ---------------------------------------------------------------------------

func TestParseBinaryOperators(t *testing.T) {
	cases := []struct {
		src string
		typ token.Type
	}{
		{"1 + 2", token.PLUS},
		{"1 - 2", token.MINUS},
		{"1 * 2", token.STAR},
		{"1 / 2", token.SLASH},
		{"1 < 2", token.LT},
		{"1 <= 2", token.LTE},
		{"1 > 2", token.GT},
		{"1 >= 2", token.GTE},
		{"1 == 2", token.EQ},
		{"1 != 2", token.NEQ},
	}
	for _, c := range cases {
		t.Run(c.typ.String(), func(t *testing.T) {
			expr := mustParse(t, c.src)
			bin, ok := expr.(*ast.Binary)
			if !ok {
				t.Fatalf("expected *ast.Binary, got %T", expr)
			}
			if bin.Token.Type != c.typ {
				t.Errorf("operator = %s, want %s", bin.Token.Type, c.typ)
			}
			if _, ok := bin.Left.(*ast.Literal); !ok {
				t.Errorf("left operand is %T, want *ast.Literal", bin.Left)
			}
			if _, ok := bin.Right.(*ast.Literal); !ok {
				t.Errorf("right operand is %T, want *ast.Literal", bin.Right)
			}
		})
	}
}

// Binary operators at the same level fold to the left.
func TestParseLeftAssociativity(t *testing.T) {
	wantString(t, "1 - 2 - 3", "((1 - 2) - 3)")
	wantString(t, "20 / 2 / 5", "((20 / 2) / 5)")
	wantString(t, "1 + 2 + 3 + 4", "(((1 + 2) + 3) + 4)")
	wantString(t, "1 == 2 == 3", "((1 == 2) == 3)")
}

func TestParsePrecedence(t *testing.T) {
	wantString(t, "1 + 2 * 3", "(1 + (2 * 3))")
	wantString(t, "1 * 2 + 3", "((1 * 2) + 3)")
	wantString(t, "1 + 2 < 3 + 4", "((1 + 2) < (3 + 4))")
	wantString(t, "1 < 2 == true", "((1 < 2) == true)")
	wantString(t, "!true == false", "((!true) == false)")
	wantString(t, "-1 * 2", "((-1) * 2)")
}

// ---------------------------------------------------------------------------
// Grouping
// ---------------------------------------------------------------------------

func TestParseGrouping(t *testing.T) {
	expr := mustParse(t, "(1 + 2)")
	grp, ok := expr.(*ast.Grouping)
	if !ok {
		t.Fatalf("expected *ast.Grouping, got %T", expr)
	}
	if _, ok := grp.Inner.(*ast.Binary); !ok {
		t.Fatalf("inner is %T, want *ast.Binary", grp.Inner)
	}
}

func TestParseGroupingOverridesPrecedence(t *testing.T) {
	wantString(t, "(1 + 2) * 3", "((group (1 + 2)) * 3)")
	wantString(t, "1 * (2 + 3)", "(1 * (group (2 + 3)))")
	wantString(t, "((1))", "(group (group 1))")
}

// Shape check for a mixed expression: unary binds tighter than *, grouping is
// preserved as its own node.
func TestParseMixedShape(t *testing.T) {
	expr := mustParse(t, "-123 * (45.67)")
	bin, ok := expr.(*ast.Binary)
	if !ok {
		t.Fatalf("expected *ast.Binary, got %T", expr)
	}
	if bin.Token.Type != token.STAR {
		t.Errorf("operator = %s, want STAR", bin.Token.Type)
	}
	un, ok := bin.Left.(*ast.Unary)
	if !ok {
		t.Fatalf("left is %T, want *ast.Unary", bin.Left)
	}
	if un.Token.Type != token.MINUS {
		t.Errorf("unary operator = %s, want MINUS", un.Token.Type)
	}
	grp, ok := bin.Right.(*ast.Grouping)
	if !ok {
		t.Fatalf("right is %T, want *ast.Grouping", bin.Right)
	}
	lit, ok := grp.Inner.(*ast.Literal)
	if !ok {
		t.Fatalf("grouped inner is %T, want *ast.Literal", grp.Inner)
	}
	if num := lit.Value.(value.Number); num != 45.67 {
		t.Errorf("grouped value = %v, want 45.67", num)
	}
	if got, want := expr.String(), "((-123) * (group 45.67))"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// Operator token attribution
// ---------------------------------------------------------------------------

// Binary nodes carry the operator token, so runtime errors can point at the
// operator's line.
func TestParseOperatorLine(t *testing.T) {
	expr := mustParse(t, "1 +\n2")
	bin := expr.(*ast.Binary)
	if bin.Token.Line != 1 {
		t.Errorf("operator line = %d, want 1", bin.Token.Line)
	}
	expr = mustParse(t, "1\n+ 2")
	bin = expr.(*ast.Binary)
	if bin.Token.Line != 2 {
		t.Errorf("operator line = %d, want 2", bin.Token.Line)
	}
}

// ---------------------------------------------------------------------------
// Parse failures
// ---------------------------------------------------------------------------

func TestParseUnclosedGroup(t *testing.T) {
	d := parseErr(t, "(1 + 2")
	if d.Message != "Expected closing )" {
		t.Errorf("message = %q, want %q", d.Message, "Expected closing )")
	}
	// The cursor sits on EOF when the ) is found missing.
	if d.Lexeme != "" {
		t.Errorf("lexeme = %q, want empty (EOF)", d.Lexeme)
	}
}

func TestParseExpectedExpression(t *testing.T) {
	cases := []struct {
		name       string
		src        string
		wantLexeme string
	}{
		{"bare_plus", "+", "+"},
		{"bare_star", "*", "*"},
		{"empty_input", "", ""},
		{"dangling_operator", "1 + ", ""},
		{"operator_pair", "1 + * 2", "*"},
		{"empty_group", "()", ")"},
		{"lone_lparen", "(", ""},
		{"lbrace", "{", "{"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := parseErr(t, c.src)
			if d.Message != "Expected expression." {
				t.Errorf("message = %q, want %q", d.Message, "Expected expression.")
			}
			if d.Lexeme != c.wantLexeme {
				t.Errorf("lexeme = %q, want %q", d.Lexeme, c.wantLexeme)
			}
		})
	}
}

// A complete expression must consume the whole stream.
func TestParseTrailingTokens(t *testing.T) {
	cases := []struct {
		name       string
		src        string
		wantLexeme string
	}{
		{"two_numbers", "1 2", "2"},
		{"stray_rparen", "1 + 2)", ")"},
		{"trailing_semicolon", "1;", ";"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := parseErr(t, c.src)
			if d.Message != "Expected end of expression." {
				t.Errorf("message = %q, want %q", d.Message, "Expected end of expression.")
			}
			if d.Lexeme != c.wantLexeme {
				t.Errorf("lexeme = %q, want %q", d.Lexeme, c.wantLexeme)
			}
		})
	}
}

func TestParseErrorRendering(t *testing.T) {
	d := parseErr(t, "+")
	want := `Parse error: line 1, "+": Expected expression.`
	if got := d.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestParseErrorIsParseKind(t *testing.T) {
	toks, err := lexer.Scan("+")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	_, err = Parse(toks)
	if !errors.Is(err, diag.ErrParse) {
		t.Errorf("errors.Is(err, diag.ErrParse) = false, want true")
	}
	if errors.Is(err, diag.ErrRuntime) {
		t.Errorf("errors.Is(err, diag.ErrRuntime) = true, want false")
	}
}

// Parse tolerates a nil or empty slice rather than panicking.
func TestParseEmptyTokenSlice(t *testing.T) {
	_, err := Parse(nil)
	if err == nil {
		t.Fatal("expected parse error for nil slice")
	}
	var d *diag.Diagnostic
	if !errors.As(err, &d) {
		t.Fatalf("error is %T, want *diag.Diagnostic", err)
	}
	if d.Message != "Expected expression." {
		t.Errorf("message = %q, want %q", d.Message, "Expected expression.")
	}
}

// ---------------------------------------------------------------------------
// Canonical printed forms
// ---------------------------------------------------------------------------

func TestParseStringForms(t *testing.T) {
	wantString(t, "123", "123")
	wantString(t, "45.67", "45.67")
	wantString(t, `"abc"`, `"abc"`)
	wantString(t, "nil", "nil")
	wantString(t, "true == true", "(true == true)")
	wantString(t, `"a" + "b"`, `("a" + "b")`)
}
