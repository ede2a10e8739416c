// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package lexer implements a single-pass, no-backtracking scanner for the Lox
// expression language.
//
// Design principles:
//   - ASCII-only input
//   - Single-pass, no backtracking
//   - // line comments and whitespace are discarded, never emitted
//   - String literals are read verbatim; no escape decoding
//   - The scan aborts on the first unscannable character or malformed literal
package lexer

import (
	"strconv"

	"github.com/probechain/go-lox/lang/diag"
	"github.com/probechain/go-lox/lang/token"
)

// Lexer holds the state for a single-pass scan.
type Lexer struct {
	input []byte

	// pos is the index into input of the next byte to be loaded into ch.
	// After advance(), ch == input[pos-1] and pos points one past it.
	pos  int
	line int // 1-based current line number

	ch byte // current character; 0 when past end
}

// New creates a new Lexer for the given input string.
func New(input string) *Lexer {
	l := &Lexer{
		input: []byte(input),
		line:  1,
	}
	l.advance() // prime l.ch with the first byte
	return l
}

// Scan tokenizes src and returns the complete token sequence, terminated by a
// single EOF token whose line is the last line the scanner touched. The first
// unscannable character or malformed literal aborts the scan and is returned
// as a *diag.Diagnostic.
func Scan(src string) ([]token.Token, error) {
	l := New(src)
	var toks []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks, nil
		}
	}
}

// advance moves to the next byte in the input, updating line tracking.
// When the end of input is reached, ch is set to 0.
func (l *Lexer) advance() {
	if l.ch == '\n' {
		l.line++
	}
	if l.pos >= len(l.input) {
		l.ch = 0
		return
	}
	l.ch = l.input[l.pos]
	l.pos++
}

// peek returns the byte after the current character without consuming it.
// Returns 0 if at or past end.
func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

// makeToken constructs a token with the given type, lexeme, and line.
func makeToken(typ token.Type, lexeme string, line int) token.Token {
	return token.Token{Type: typ, Lexeme: lexeme, Line: line}
}

// skipWhitespace consumes space, tab, carriage return, newline, and // line
// comments. The newline that ends a comment is left for the whitespace arm so
// the line counter advances through it.
func (l *Lexer) skipWhitespace() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.advance()
		case l.ch == '/' && l.peek() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.advance()
			}
		default:
			return
		}
	}
}

// NextToken scans and returns the next token from the input. After EOF is
// reached, subsequent calls continue returning EOF tokens. A scan failure
// returns an ILLEGAL token carrying the offending lexeme together with a
// parse-kind diagnostic.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespace()

	line := l.line
	ch := l.ch

	if ch == 0 {
		return makeToken(token.EOF, "", line), nil
	}

	l.advance() // consume ch; from here on, l.ch is the character AFTER ch

	switch {
	// -------------------------------------------------------------------------
	// Identifiers and keywords
	// -------------------------------------------------------------------------
	case isIdentStart(ch):
		lit := l.readIdentFromFirst(ch)
		return makeToken(token.LookupIdent(lit), lit, line), nil

	// -------------------------------------------------------------------------
	// Numeric literals
	// -------------------------------------------------------------------------
	case isDigit(ch):
		lit, ok := l.readNumberFromFirst(ch)
		if !ok {
			return l.fail(token.ILLEGAL, lit, "Invalid number.")
		}
		f, err := strconv.ParseFloat(lit, 32)
		if err != nil {
			return l.fail(token.ILLEGAL, lit, "Invalid number.")
		}
		tok := makeToken(token.NUMBER, lit, line)
		tok.Number = float32(f)
		return tok, nil

	// -------------------------------------------------------------------------
	// String literals
	// -------------------------------------------------------------------------
	case ch == '"':
		// The opening '"' has been consumed; read the rest.
		body, ok := l.readStringBody()
		if !ok {
			return l.fail(token.ILLEGAL, `"`+body, "Unterminated string.")
		}
		tok := makeToken(token.STRING, `"`+body+`"`, line)
		tok.Literal = body
		return tok, nil

	// -------------------------------------------------------------------------
	// One or two character operators
	// -------------------------------------------------------------------------
	case ch == '!':
		if l.ch == '=' {
			l.advance()
			return makeToken(token.NEQ, "!=", line), nil
		}
		return makeToken(token.BANG, "!", line), nil

	case ch == '=':
		if l.ch == '=' {
			l.advance()
			return makeToken(token.EQ, "==", line), nil
		}
		return makeToken(token.ASSIGN, "=", line), nil

	case ch == '<':
		if l.ch == '=' {
			l.advance()
			return makeToken(token.LTE, "<=", line), nil
		}
		return makeToken(token.LT, "<", line), nil

	case ch == '>':
		if l.ch == '=' {
			l.advance()
			return makeToken(token.GTE, ">=", line), nil
		}
		return makeToken(token.GT, ">", line), nil

	// -------------------------------------------------------------------------
	// Single-character tokens
	// -------------------------------------------------------------------------
	case ch == '(':
		return makeToken(token.LPAREN, "(", line), nil
	case ch == ')':
		return makeToken(token.RPAREN, ")", line), nil
	case ch == '{':
		return makeToken(token.LBRACE, "{", line), nil
	case ch == '}':
		return makeToken(token.RBRACE, "}", line), nil
	case ch == ',':
		return makeToken(token.COMMA, ",", line), nil
	case ch == '.':
		return makeToken(token.DOT, ".", line), nil
	case ch == '-':
		return makeToken(token.MINUS, "-", line), nil
	case ch == '+':
		return makeToken(token.PLUS, "+", line), nil
	case ch == ';':
		return makeToken(token.SEMICOLON, ";", line), nil
	case ch == '*':
		return makeToken(token.STAR, "*", line), nil
	case ch == '/':
		// A second '/' would have been consumed as a comment in skipWhitespace.
		return makeToken(token.SLASH, "/", line), nil
	}

	// Anything else aborts the scan.
	return l.fail(token.ILLEGAL, string([]byte{ch}), "Unexpected character.")
}

// fail builds the ILLEGAL token for an unscannable input and wraps it in a
// parse-kind diagnostic. The token line is the line the scan stopped on.
func (l *Lexer) fail(typ token.Type, lexeme, message string) (token.Token, error) {
	tok := makeToken(typ, lexeme, l.line)
	return tok, diag.Parse(tok, message)
}

// ---------------------------------------------------------------------------
// Internal readers. Each assumes the first character has already been
// consumed by the advance() call inside NextToken.
// ---------------------------------------------------------------------------

// readIdentFromFirst builds an identifier lexeme starting with the already-
// consumed byte `first`, then consuming subsequent ident-continue bytes.
func (l *Lexer) readIdentFromFirst(first byte) string {
	buf := make([]byte, 1, 16)
	buf[0] = first
	for isIdentContinue(l.ch) {
		buf = append(buf, l.ch)
		l.advance()
	}
	return string(buf)
}

// readNumberFromFirst parses a numeric lexeme given the already-consumed
// first digit `first`: a run of digits, optionally followed by '.' and at
// least one more digit. A '.' with no digit after it is consumed into the
// lexeme and reported by returning ok == false.
func (l *Lexer) readNumberFromFirst(first byte) (string, bool) {
	buf := make([]byte, 1, 24)
	buf[0] = first

	for isDigit(l.ch) {
		buf = append(buf, l.ch)
		l.advance()
	}

	if l.ch == '.' {
		buf = append(buf, '.')
		l.advance() // consume '.'
		if !isDigit(l.ch) {
			return string(buf), false
		}
		for isDigit(l.ch) {
			buf = append(buf, l.ch)
			l.advance()
		}
	}

	return string(buf), true
}

// readStringBody reads the content of a string literal after the opening '"'
// has been consumed. It returns the text between the quotes and a bool that
// is false when the input ran out before a closing '"'. Characters are taken
// verbatim; embedded newlines are allowed and counted by advance.
func (l *Lexer) readStringBody() (string, bool) {
	buf := make([]byte, 0, 32)
	for {
		switch l.ch {
		case 0:
			// Unterminated string.
			return string(buf), false
		case '"':
			l.advance() // consume closing '"'
			return string(buf), true
		default:
			buf = append(buf, l.ch)
			l.advance()
		}
	}
}

// ---------------------------------------------------------------------------
// Character classification helpers
// ---------------------------------------------------------------------------

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
