// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package parser implements a recursive-descent parser for the Lox expression
// language.
//
// Design overview:
//
//   - One method per grammar level, from equality down to primary. Binary
//     levels fold left-associatively; unary recurses into itself so prefix
//     chains associate to the right.
//   - The parser walks a pre-scanned token slice with a single forward
//     cursor. It never backtracks and looks no further than the current
//     token.
//   - The first error aborts the parse; there is no recovery or
//     synchronisation.
//   - A successful parse must account for every token: anything left between
//     the expression and EOF is an error.
package parser

import (
	"github.com/probechain/go-lox/lang/ast"
	"github.com/probechain/go-lox/lang/diag"
	"github.com/probechain/go-lox/lang/token"
	"github.com/probechain/go-lox/lang/value"
)

// Parser holds the mutable state for a single parse run.
type Parser struct {
	toks []token.Token
	pos  int // index of the current token
}

// newParser initialises a Parser over a scanned token slice.
func newParser(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse is the public entry point. It parses a single complete expression
// from the token stream produced by the scanner and returns its AST. The
// stream must hold exactly one expression followed by EOF; trailing tokens
// are an error. The first error aborts the parse and is returned as a
// *diag.Diagnostic.
func Parse(toks []token.Token) (ast.Expression, error) {
	p := newParser(toks)
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.curIs(token.EOF) {
		return nil, p.fail("Expected end of expression.")
	}
	return expr, nil
}

// ---------------------------------------------------------------------------
// Token navigation helpers
// ---------------------------------------------------------------------------

// cur returns the token under the cursor. Past the end of the slice it keeps
// returning the final token, which is EOF in any well-formed scan.
func (p *Parser) cur() token.Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	if n := len(p.toks); n > 0 {
		return p.toks[n-1]
	}
	return token.Token{Type: token.EOF, Line: 1}
}

// advance moves the cursor one token forward, stopping at the end of the
// slice.
func (p *Parser) advance() {
	if p.pos < len(p.toks) {
		p.pos++
	}
}

// curIs returns true if the current token has the given type.
func (p *Parser) curIs(typ token.Type) bool { return p.cur().Type == typ }

// fail builds a parse diagnostic attributed to the current token.
func (p *Parser) fail(message string) error {
	return diag.Parse(p.cur(), message)
}

// ---------------------------------------------------------------------------
// Grammar levels, loosest binding first
// ---------------------------------------------------------------------------

// parseExpression is the top of the grammar. Expressions begin at the
// equality level.
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseEquality()
}

// parseEquality handles == and !=.
func (p *Parser) parseEquality() (ast.Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.curIs(token.EQ) || p.curIs(token.NEQ) {
		op := p.cur()
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Token: op, Left: left, Right: right}
	}
	return left, nil
}

// parseComparison handles <, <=, > and >=.
func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.curIs(token.LT) || p.curIs(token.LTE) || p.curIs(token.GT) || p.curIs(token.GTE) {
		op := p.cur()
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Token: op, Left: left, Right: right}
	}
	return left, nil
}

// parseTerm handles + and -.
func (p *Parser) parseTerm() (ast.Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.curIs(token.PLUS) || p.curIs(token.MINUS) {
		op := p.cur()
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Token: op, Left: left, Right: right}
	}
	return left, nil
}

// parseFactor handles * and /.
func (p *Parser) parseFactor() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.curIs(token.STAR) || p.curIs(token.SLASH) {
		op := p.cur()
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Token: op, Left: left, Right: right}
	}
	return left, nil
}

// parseUnary handles prefix ! and -. The operand is itself a unary
// expression, so chains like !!x nest rightwards.
func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.curIs(token.BANG) || p.curIs(token.MINUS) {
		op := p.cur()
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Token: op, Right: right}, nil
	}
	return p.parsePrimary()
}

// parsePrimary handles literals and parenthesised groups. Anything else is
// "Expected expression." attributed to the token that could not start one.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.cur()
	switch tok.Type {
	case token.NUMBER:
		p.advance()
		return &ast.Literal{Token: tok, Value: value.Number(tok.Number)}, nil

	case token.STRING:
		p.advance()
		return &ast.Literal{Token: tok, Value: value.String(tok.Literal)}, nil

	case token.TRUE:
		p.advance()
		return &ast.Literal{Token: tok, Value: value.True}, nil

	case token.FALSE:
		p.advance()
		return &ast.Literal{Token: tok, Value: value.False}, nil

	case token.NIL:
		p.advance()
		return &ast.Literal{Token: tok, Value: value.Nil}, nil

	case token.LPAREN:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if !p.curIs(token.RPAREN) {
			return nil, p.fail("Expected closing )")
		}
		p.advance()
		return &ast.Grouping{Token: tok, Inner: inner}, nil
	}

	return nil, p.fail("Expected expression.")
}
