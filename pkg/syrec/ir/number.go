// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ir

import "github.com/syrec-lang/syrec/pkg/util"

// NumberOp is the arithmetic operator available inside a ConstExpr number
// (the parenthesised "(n op n)" production; distinct from, and a strict
// subset of, the Expression-level BinaryOp set).
type NumberOp uint8

const (
	NumberAdd NumberOp = iota
	NumberSubtract
	NumberMultiply
	NumberDivide
)

// Number is a compile-time-ish quantity: a literal, a reference to a
// currently-bound loop variable, or a small arithmetic tree over the two.
// It is immutable once constructed.
type Number interface {
	// ConstantValue returns the number's value and true if it is known at
	// the current point of analysis (i.e. a literal, or a loop-variable
	// reference whose value the scope stack currently knows). Returns
	// (0, false) otherwise.
	ConstantValue() util.Option[uint]
	isNumber()
}

// ConstantInt is a literal integer value.
type ConstantInt struct {
	Value uint
}

func (n *ConstantInt) ConstantValue() util.Option[uint] { return util.Some(n.Value) }
func (*ConstantInt) isNumber()                          {}

// NewConstantInt constructs a literal number.
func NewConstantInt(value uint) *ConstantInt {
	return &ConstantInt{Value: value}
}

// LoopVarRef names a loop variable (its Name includes the leading sigil,
// e.g. "$i"). It carries the value, if any, that the scope stack's
// loop-variable table held when the reference was constructed;
// ConstantValue returns that snapshot and never consults the scope stack
// again.
type LoopVarRef struct {
	Name  string
	known util.Option[uint]
}

func (n *LoopVarRef) ConstantValue() util.Option[uint] { return n.known }
func (*LoopVarRef) isNumber()                          {}

// NewLoopVarRef constructs a reference to loop variable name, with its
// currently-known value (if any) as observed at construction time by the
// caller consulting the scope stack.
func NewLoopVarRef(name string, known util.Option[uint]) *LoopVarRef {
	return &LoopVarRef{Name: name, known: known}
}

// ConstExpr is a small arithmetic tree over two numbers, e.g. "(n + m)".
// NewNumber folds a ConstExpr whose operands are both constant at
// construction time into a ConstantInt, so a ConstExpr persisting in the IR
// has at least one non-constant operand — except a division by a constant
// zero, which NewNumber keeps as a ConstExpr over two constants.
type ConstExpr struct {
	Lhs, Rhs Number
	Op       NumberOp
}

func (n *ConstExpr) ConstantValue() util.Option[uint] {
	lv, lok := n.Lhs.ConstantValue().Get()
	rv, rok := n.Rhs.ConstantValue().Get()

	if !lok || !rok {
		return util.None[uint]()
	}

	if n.Op == NumberDivide && rv == 0 {
		return util.None[uint]()
	}

	return util.Some(evalNumberOp(n.Op, lv, rv))
}

func (*ConstExpr) isNumber() {}

// NewNumber folds lhs/rhs eagerly into a ConstantInt when both are already
// constant, otherwise returns a structural ConstExpr node. ok is false only
// when both operands are constant and op is division by zero, in which case
// the caller is expected to emit a DivisionByZero diagnostic itself (this
// constructor has no diagnostic sink).
func NewNumber(lhs, rhs Number, op NumberOp) (n Number, ok bool) {
	lv, lok := lhs.ConstantValue().Get()
	rv, rok := rhs.ConstantValue().Get()

	if lok && rok {
		if op == NumberDivide && rv == 0 {
			return &ConstExpr{Lhs: lhs, Rhs: rhs, Op: op}, false
		}

		return &ConstantInt{Value: evalNumberOp(op, lv, rv)}, true
	}

	return &ConstExpr{Lhs: lhs, Rhs: rhs, Op: op}, true
}

func evalNumberOp(op NumberOp, a, b uint) uint {
	switch op {
	case NumberAdd:
		return a + b
	case NumberSubtract:
		return a - b
	case NumberMultiply:
		return a * b
	case NumberDivide:
		return a / b
	default:
		return 0
	}
}
