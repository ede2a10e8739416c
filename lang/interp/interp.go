// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The ProbeChain is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the ProbeChain. If not, see <http://www.gnu.org/licenses/>.

// Package interp implements a tree-walking evaluator for the Lox expression
// language.
//
// Design overview:
//
//   - Eval recurses over the tree with an explicit type switch; the variant
//     set is closed, so there is no visitor indirection.
//   - Operands evaluate before operators look at them, left before right,
//     with no short-circuiting. The first failing subexpression aborts the
//     whole evaluation.
//   - Operators are defined only for exact kind pairings. There is no
//     coercion, no truthiness, and no implicit stringification; every
//     undefined pairing is a runtime error attributed to the operator token.
//   - The evaluator holds no state: re-evaluating a tree yields the same
//     result, and concurrent evaluations of independent trees need no
//     locking.
package interp

import (
	"fmt"

	"github.com/probechain/go-lox/lang/ast"
	"github.com/probechain/go-lox/lang/diag"
	"github.com/probechain/go-lox/lang/token"
	"github.com/probechain/go-lox/lang/value"
)

// Eval evaluates an expression tree to a runtime value. A failed evaluation
// returns a runtime-kind *diag.Diagnostic pointing at the operator that
// rejected its operands.
func Eval(expr ast.Expression) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return Eval(e.Inner)
	case *ast.Unary:
		return evalUnary(e)
	case *ast.Binary:
		return evalBinary(e)
	}
	return nil, fmt.Errorf("interp: unexpected node %T", expr)
}

// evalUnary evaluates the operand, then applies the operator: '-' negates a
// Number, '!' inverts a Boolean. No other operand kinds are accepted.
func evalUnary(e *ast.Unary) (value.Value, error) {
	right, err := Eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Token.Type {
	case token.MINUS:
		if n, ok := right.(value.Number); ok {
			return -n, nil
		}
	case token.BANG:
		if b, ok := right.(value.Boolean); ok {
			return boolValue(!bool(b)), nil
		}
	}
	return nil, diag.Runtime(e.Token, "Incompatible types.")
}

// evalBinary evaluates both operands unconditionally, left first, then
// dispatches on the pairing of their kinds. Only Number/Number,
// String/String, and Nil/Nil pairings have defined operators.
func evalBinary(e *ast.Binary) (value.Value, error) {
	left, err := Eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := Eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch {
	case left.Kind() == value.KindNumber && right.Kind() == value.KindNumber:
		return evalNumberOp(e.Token, left.(value.Number), right.(value.Number))
	case left.Kind() == value.KindString && right.Kind() == value.KindString:
		return evalStringOp(e.Token, left.(value.String), right.(value.String))
	case left.Kind() == value.KindNil && right.Kind() == value.KindNil:
		return evalNilOp(e.Token)
	}
	return nil, diag.Runtime(e.Token, "Incompatible types.")
}

// evalNumberOp applies an arithmetic or comparison operator to two numbers.
// Division by zero is not trapped; it follows IEEE 754 and yields an
// infinity.
func evalNumberOp(op token.Token, l, r value.Number) (value.Value, error) {
	switch op.Type {
	case token.PLUS:
		return l + r, nil
	case token.MINUS:
		return l - r, nil
	case token.STAR:
		return l * r, nil
	case token.SLASH:
		return l / r, nil
	case token.LT:
		return boolValue(l < r), nil
	case token.LTE:
		return boolValue(l <= r), nil
	case token.GT:
		return boolValue(l > r), nil
	case token.GTE:
		return boolValue(l >= r), nil
	case token.EQ:
		return boolValue(l == r), nil
	case token.NEQ:
		return boolValue(l != r), nil
	}
	return nil, diag.Runtime(op, "Incompatible types.")
}

// evalStringOp applies an operator to two strings. Concatenation is the only
// defined string operation; comparisons, equality included, are rejected.
func evalStringOp(op token.Token, l, r value.String) (value.Value, error) {
	if op.Type == token.PLUS {
		return l + r, nil
	}
	return nil, diag.Runtime(op, "Incompatible types.")
}

// evalNilOp applies an operator to two nils. Only equality is defined:
// nil == nil is true, nil != nil is false.
func evalNilOp(op token.Token) (value.Value, error) {
	switch op.Type {
	case token.EQ:
		return value.True, nil
	case token.NEQ:
		return value.False, nil
	}
	return nil, diag.Runtime(op, "Incompatible types.")
}

// boolValue maps a Go bool onto the shared Boolean singletons.
func boolValue(b bool) value.Value {
	if b {
		return value.True
	}
	return value.False
}
