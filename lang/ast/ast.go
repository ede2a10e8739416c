// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package ast defines the Abstract Syntax Tree for the Lox expression
// language.
//
// Design overview:
//
//   - All AST nodes implement the Node interface via TokenLiteral and String.
//   - Expression is a marker interface that embeds Node to enable type-safe
//     dispatch; the variant set is closed, and consumers switch on the
//     concrete types directly rather than through a visitor.
//   - Every node owns its children outright; trees are strict hierarchies,
//     built bottom-up by the parser and immutable afterwards.
//   - Each node carries the token.Token that best represents it in source,
//     so diagnostics can reference operator positions.
package ast

import (
	"github.com/probechain/go-lox/lang/token"
	"github.com/probechain/go-lox/lang/value"
)

// ---------------------------------------------------------------------------
// Core interfaces
// ---------------------------------------------------------------------------

// Node is the base interface that every AST node must implement.
type Node interface {
	// TokenLiteral returns the lexeme of the token that originated this node.
	// Used primarily for debugging and testing.
	TokenLiteral() string

	// String returns a human-readable, parenthesised representation of the node
	// suitable for unit tests and debug output.
	String() string
}

// Expression is a marker interface for all expression nodes.
// Every Expression is also a Node.
type Expression interface {
	Node
	expressionNode()
}

// ---------------------------------------------------------------------------
// Expression nodes
// ---------------------------------------------------------------------------

// Literal is a scalar constant: 123, 45.67, "text", true, false, nil.
//
// The scanner has already decoded the source text; Value holds the runtime
// value the literal evaluates to.
type Literal struct {
	Token token.Token // NUMBER, STRING, TRUE, FALSE, or NIL
	Value value.Value
}

func (e *Literal) expressionNode()      {}
func (e *Literal) TokenLiteral() string { return e.Token.Lexeme }
func (e *Literal) String() string       { return e.Token.Lexeme }

// Unary is a prefix expression: -x or !x.
type Unary struct {
	Token token.Token // the operator token: MINUS or BANG
	Right Expression
}

func (e *Unary) expressionNode()      {}
func (e *Unary) TokenLiteral() string { return e.Token.Lexeme }
func (e *Unary) String() string       { return "(" + e.Token.Lexeme + e.Right.String() + ")" }

// Binary is an infix expression: x + y, x == y, x < y, etc.
type Binary struct {
	Token token.Token // the operator token
	Left  Expression
	Right Expression
}

func (e *Binary) expressionNode()      {}
func (e *Binary) TokenLiteral() string { return e.Token.Lexeme }
func (e *Binary) String() string {
	return "(" + e.Left.String() + " " + e.Token.Lexeme + " " + e.Right.String() + ")"
}

// Grouping is a parenthesised expression: (x).
//
// The node is kept in the tree rather than collapsed so that the printed form
// mirrors the source structure.
type Grouping struct {
	Token token.Token // '('
	Inner Expression
}

func (e *Grouping) expressionNode()      {}
func (e *Grouping) TokenLiteral() string { return e.Token.Lexeme }
func (e *Grouping) String() string       { return "(group " + e.Inner.String() + ")" }
