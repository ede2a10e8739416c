// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package diag defines the diagnostic type shared by the scanner, the parser,
// and the evaluator.
//
// A failure anywhere in the pipeline is reported as a single *Diagnostic
// carrying the offending token's line and lexeme plus a message. The two
// kinds, parse and runtime, are discriminated by Kind and exposed through
// the ErrParse and ErrRuntime sentinels for errors.Is checks.
package diag

import (
	"errors"
	"fmt"

	"github.com/probechain/go-lox/lang/token"
)

// ErrParse is the class of all scan-time and parse-time failures.
var ErrParse = errors.New("parse error")

// ErrRuntime is the class of all evaluation failures.
var ErrRuntime = errors.New("runtime error")

// Kind discriminates parse-time from run-time diagnostics.
type Kind int

const (
	KindParse Kind = iota
	KindRuntime
)

var kindNames = [...]string{
	KindParse:   "Parse error",
	KindRuntime: "Runtime error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("diag(%d)", k)
}

// Diagnostic is a positioned pipeline error. It is constructed at the point
// of failure from the offending token and never mutated afterwards.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Lexeme  string
	Message string
}

// Parse returns a parse-kind diagnostic attributed to tok.
func Parse(tok token.Token, message string) *Diagnostic {
	return &Diagnostic{Kind: KindParse, Line: tok.Line, Lexeme: tok.Lexeme, Message: message}
}

// Runtime returns a runtime-kind diagnostic attributed to tok.
func Runtime(tok token.Token, message string) *Diagnostic {
	return &Diagnostic{Kind: KindRuntime, Line: tok.Line, Lexeme: tok.Lexeme, Message: message}
}

// Error renders the diagnostic in the driver's user-facing form, e.g.
//
//	Parse error: line 3, "+": Expected expression.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: line %d, %q: %s", d.Kind, d.Line, d.Lexeme, d.Message)
}

// Unwrap maps the diagnostic onto its class sentinel so that
// errors.Is(err, ErrParse) and errors.Is(err, ErrRuntime) work as expected.
func (d *Diagnostic) Unwrap() error {
	if d.Kind == KindRuntime {
		return ErrRuntime
	}
	return ErrParse
}
