// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package value defines the Lox runtime value system.
//
// Design principles:
//   - A closed set of variants: Number (32-bit float), String, Boolean, Nil
//   - Value semantics only: no identity, no references, no heap graph
//   - Structural equality via Equals
//   - Pre-allocated singletons for the constant values (True, False, Nil)
package value

import (
	"fmt"
	"strconv"
)

// Kind categorizes a runtime value.
type Kind int

const (
	KindNil Kind = iota
	KindNumber
	KindString
	KindBool
)

var kindNames = [...]string{
	KindNil:    "nil",
	KindNumber: "number",
	KindString: "string",
	KindBool:   "boolean",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Value is the interface implemented by all Lox runtime values.
type Value interface {
	// Kind returns the category of this value.
	Kind() Kind

	// String returns the human-readable rendering used for REPL echo.
	String() string

	// Equals reports whether two values are structurally identical.
	Equals(other Value) bool
}

// ---- Number ----------------------------------------------------------------

// Number is a 32-bit floating point value.
type Number float32

func (n Number) Kind() Kind { return KindNumber }

// String renders plain decimal notation, never an exponent, with the fewest
// digits that round-trip as a float32. Whole numbers print without a
// fraction part.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 32)
}

func (n Number) Equals(other Value) bool {
	o, ok := other.(Number)
	return ok && n == o
}

// ---- String ----------------------------------------------------------------

// String is an owned text value.
type String string

func (s String) Kind() Kind     { return KindString }
func (s String) String() string { return string(s) }

func (s String) Equals(other Value) bool {
	o, ok := other.(String)
	return ok && s == o
}

// ---- Boolean ---------------------------------------------------------------

// Boolean is a truth value.
type Boolean bool

func (b Boolean) Kind() Kind { return KindBool }

func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Boolean) Equals(other Value) bool {
	o, ok := other.(Boolean)
	return ok && b == o
}

// ---- Nil -------------------------------------------------------------------

// nilValue is the sole inhabitant of KindNil.
type nilValue struct{}

func (nilValue) Kind() Kind     { return KindNil }
func (nilValue) String() string { return "nil" }

func (nilValue) Equals(other Value) bool {
	return other != nil && other.Kind() == KindNil
}

// Pre-allocated singletons for the constant values.
var (
	True  Value = Boolean(true)
	False Value = Boolean(false)
	Nil   Value = nilValue{}
)
