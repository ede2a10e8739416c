// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package token defines the lexical token types for the Lox expression
// language.
package token

import "fmt"

// Token represents a lexical token.
//
// Lexeme is the exact source substring the token was derived from; for
// string tokens that is the quoted form. Only literal tokens carry a decoded
// value: STRING fills Literal with the text between the quotes, NUMBER fills
// Number with the parsed 32-bit float. Line is 1-based.
type Token struct {
	Type    Type
	Lexeme  string
	Literal string
	Number  float32
	Line    int
}

// String returns a compact human-readable form of the token.
func (t Token) String() string {
	switch t.Type {
	case STRING:
		return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, t.Literal)
	case NUMBER:
		return fmt.Sprintf("%s %s %g", t.Type, t.Lexeme, t.Number)
	default:
		return fmt.Sprintf("%s %s", t.Type, t.Lexeme)
	}
}

// Type is the set of lexical token types.
type Type int

const (
	// Special tokens
	ILLEGAL Type = iota
	EOF

	// Literals
	IDENT  // count, _x1
	NUMBER // 123, 45.67
	STRING // "hello"

	// Punctuation
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	COMMA     // ,
	DOT       // .
	SEMICOLON // ;

	// Operators
	MINUS  // -
	PLUS   // +
	SLASH  // /
	STAR   // *
	BANG   // !
	ASSIGN // =
	EQ     // ==
	NEQ    // !=
	LT     // <
	LTE    // <=
	GT     // >
	GTE    // >=

	// Keywords
	keywordStart
	AND      // and
	CLASS    // class
	ELSE     // else
	FALSE    // false
	FUN      // fun
	FOR      // for
	IF       // if
	NIL      // nil
	OR       // or
	PRINT    // print
	RETURN   // return
	SUPER    // super
	THIS     // this
	TRUE     // true
	VAR      // var
	WHILE    // while
	keywordEnd
)

var tokenNames = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	COMMA:     ",",
	DOT:       ".",
	SEMICOLON: ";",

	MINUS:  "-",
	PLUS:   "+",
	SLASH:  "/",
	STAR:   "*",
	BANG:   "!",
	ASSIGN: "=",
	EQ:     "==",
	NEQ:    "!=",
	LT:     "<",
	LTE:    "<=",
	GT:     ">",
	GTE:    ">=",

	AND:    "and",
	CLASS:  "class",
	ELSE:   "else",
	FALSE:  "false",
	FUN:    "fun",
	FOR:    "for",
	IF:     "if",
	NIL:    "nil",
	OR:     "or",
	PRINT:  "print",
	RETURN: "return",
	SUPER:  "super",
	THIS:   "this",
	TRUE:   "true",
	VAR:    "var",
	WHILE:  "while",
}

// String returns the string form of a token type.
func (t Type) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsKeyword returns true if the token is a keyword.
func (t Type) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// IsOperator returns true if the token is an operator.
func (t Type) IsOperator() bool {
	return t >= MINUS && t <= GTE
}

// IsLiteral returns true if the token is a literal value or identifier.
func (t Type) IsLiteral() bool {
	return t >= IDENT && t <= STRING
}

// keywords maps keyword strings to token types.
var keywords map[string]Type

func init() {
	keywords = make(map[string]Type)
	for i := keywordStart + 1; i < keywordEnd; i++ {
		keywords[tokenNames[i]] = i
	}
}

// LookupIdent checks if an identifier is a keyword.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
