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

// BinaryOp is the operator of a Binary expression.
type BinaryOp uint8

const (
	Add BinaryOp = iota
	Subtract
	Exor
	Multiply
	Divide
	FracDivide
	Modulo
	BitwiseAnd
	BitwiseOr
	LogicalAnd
	LogicalOr
	Equals
	NotEquals
	LessThan
	GreaterThan
	LessEquals
	GreaterEquals
)

// binaryOpInfo is one row of the §4.1 operator table.
type binaryOpInfo struct {
	symbol      string
	relational  bool
	lhsIdentity util.Option[uint32]
	rhsIdentity util.Option[uint32]
	eval        func(a, b uint32) (uint32, bool) // ok=false signals a fault (division by zero)
}

var binaryOpTable = [...]binaryOpInfo{
	Add: {"+", false, util.None[uint32](), util.Some(uint32(0)), func(a, b uint32) (uint32, bool) { return a + b, true }},
	Subtract: {
		"-", false, util.None[uint32](), util.Some(uint32(0)),
		func(a, b uint32) (uint32, bool) { return a - b, true },
	},
	Exor: {"^", false, util.Some(uint32(0)), util.Some(uint32(0)), func(a, b uint32) (uint32, bool) { return a ^ b, true }},
	Multiply: {
		"*", false, util.None[uint32](), util.None[uint32](),
		func(a, b uint32) (uint32, bool) { return a * b, true },
	},
	Divide: {"/", false, util.None[uint32](), util.None[uint32](), func(a, b uint32) (uint32, bool) {
		if b == 0 {
			return 0, false
		}

		return a / b, true
	}},
	FracDivide: {"*>", false, util.None[uint32](), util.None[uint32](), func(a, b uint32) (uint32, bool) {
		if b == 0 {
			return 0, false
		}

		return uint32((uint64(a) * uint64(b)) >> 32), true
	}},
	Modulo: {"%", false, util.None[uint32](), util.None[uint32](), func(a, b uint32) (uint32, bool) {
		if b == 0 {
			return 0, false
		}

		return a % b, true
	}},
	BitwiseAnd: {
		"&", false, util.None[uint32](), util.None[uint32](),
		func(a, b uint32) (uint32, bool) { return a & b, true },
	},
	BitwiseOr: {
		"|", false, util.Some(uint32(0)), util.Some(uint32(0)),
		func(a, b uint32) (uint32, bool) { return a | b, true },
	},
	LogicalAnd: {"&&", true, util.None[uint32](), util.Some(uint32(1)), func(a, b uint32) (uint32, bool) {
		return boolU32(a != 0 && b != 0), true
	}},
	LogicalOr: {"||", true, util.Some(uint32(0)), util.Some(uint32(0)), func(a, b uint32) (uint32, bool) {
		return boolU32(a != 0 || b != 0), true
	}},
	Equals: {"=", true, util.None[uint32](), util.None[uint32](), func(a, b uint32) (uint32, bool) {
		return boolU32(a == b), true
	}},
	NotEquals: {"!=", true, util.None[uint32](), util.None[uint32](), func(a, b uint32) (uint32, bool) {
		return boolU32(a != b), true
	}},
	LessThan: {"<", true, util.None[uint32](), util.None[uint32](), func(a, b uint32) (uint32, bool) {
		return boolU32(a < b), true
	}},
	GreaterThan: {">", true, util.None[uint32](), util.None[uint32](), func(a, b uint32) (uint32, bool) {
		return boolU32(a > b), true
	}},
	LessEquals: {"<=", true, util.None[uint32](), util.None[uint32](), func(a, b uint32) (uint32, bool) {
		return boolU32(a <= b), true
	}},
	GreaterEquals: {">=", true, util.None[uint32](), util.None[uint32](), func(a, b uint32) (uint32, bool) {
		return boolU32(a >= b), true
	}},
}

func boolU32(b bool) uint32 {
	if b {
		return 1
	}

	return 0
}

// Symbol returns the SyReC concrete-syntax symbol for this operator.
func (op BinaryOp) Symbol() string { return binaryOpTable[op].symbol }

// IsRelational reports whether this operator always produces a 1-bit
// result (comparisons and logical and/or).
func (op BinaryOp) IsRelational() bool { return binaryOpTable[op].relational }

// IsDivisionClass reports whether this operator faults on a zero rhs.
func (op BinaryOp) IsDivisionClass() bool {
	return op == Divide || op == FracDivide || op == Modulo
}

// LhsIdentity returns the operator's left identity element, if any.
func (op BinaryOp) LhsIdentity() util.Option[uint32] { return binaryOpTable[op].lhsIdentity }

// RhsIdentity returns the operator's right identity element, if any.
func (op BinaryOp) RhsIdentity() util.Option[uint32] { return binaryOpTable[op].rhsIdentity }

// Eval applies this operator's pure evaluator to a, b. ok is false only for
// a division-class operator with b == 0.
func (op BinaryOp) Eval(a, b uint32) (result uint32, ok bool) {
	return binaryOpTable[op].eval(a, b)
}

// ShiftOp is the operator of a Shift expression.
type ShiftOp uint8

const (
	ShiftLeft ShiftOp = iota
	ShiftRight
)

func (op ShiftOp) Symbol() string {
	if op == ShiftLeft {
		return "<<"
	}

	return ">>"
}

// Eval applies this shift. A shift of a zero value yields zero regardless of
// amount; a shift by zero returns the value unchanged — both are true of Go's
// native shift operators already, stated here because spec.md calls them out
// as explicit evaluator cases.
func (op ShiftOp) Eval(value uint32, amount uint32) uint32 {
	if op == ShiftLeft {
		return value << amount
	}

	return value >> amount
}

// UnaryStatementOp is the operator of a UnaryAssign statement.
type UnaryStatementOp uint8

const (
	Invert UnaryStatementOp = iota
	Increment
	Decrement
)

func (op UnaryStatementOp) Symbol() string {
	switch op {
	case Invert:
		return "~="
	case Increment:
		return "++="
	default:
		return "--="
	}
}

// AssignOp is the operator of an Assign statement.
type AssignOp uint8

const (
	AssignAdd AssignOp = iota
	AssignSubtract
	AssignExor
)

func (op AssignOp) Symbol() string {
	switch op {
	case AssignAdd:
		return "+="
	case AssignSubtract:
		return "-="
	default:
		return "^="
	}
}

// TruncationMode selects how an oversized constant is cut down to fit a
// target bit-width.
type TruncationMode uint8

const (
	TruncateModulo TruncationMode = iota
	TruncateBitwiseAnd
)

// Truncate fits value into a w-bit field, per spec.md §4.1. The mode is a
// parameter to this single call, never ambient state, so different calls
// within the same analysis run (e.g. a CLI flag changed between two
// invocations in a test) can't interfere with each other.
func Truncate(value uint32, w uint, mode TruncationMode) uint32 {
	if w == 0 {
		return 0
	}

	if w >= 32 {
		return value
	}

	limit := uint32(1)<<w - 1
	if value < limit {
		return value
	}

	switch mode {
	case TruncateBitwiseAnd:
		return value & limit
	default:
		return value % limit
	}
}
