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

// Expression is a SyReC value-producing expression: a sum over {Numeric,
// Variable, Binary, Shift}. Every variant knows its own bit-width; the
// analyzer's expression visitor is responsible for having unified operand
// widths before constructing a Binary or Shift node (see
// pkg/syrec/analyzer/expression.go).
type Expression interface {
	Bitwidth() uint
	isExpression()
}

// Numeric wraps a Number as an expression, carrying the bit-width the
// surrounding context assigned it (the context-expected width, or 32 when
// none was known).
type Numeric struct {
	Value Number
	Bw    uint
}

func (e *Numeric) Bitwidth() uint { return e.Bw }
func (*Numeric) isExpression()    {}

// NewNumeric constructs a Numeric expression with the given bit-width.
func NewNumeric(value Number, bitwidth uint) *Numeric {
	return &Numeric{Value: value, Bw: bitwidth}
}

// VariableExpr is a reference to some VariableAccess, used as a value.
type VariableExpr struct {
	Access *VariableAccess
}

func (e *VariableExpr) Bitwidth() uint { return e.Access.Bitwidth() }
func (*VariableExpr) isExpression()    {}

// NewVariableExpr constructs an expression around a variable access.
func NewVariableExpr(access *VariableAccess) *VariableExpr {
	return &VariableExpr{Access: access}
}

// Binary is a two-operand expression. Its Bw is fixed at construction by
// NewBinary according to spec.md §3: 1 for a relational/logical op,
// otherwise the (already-unified) operand width.
type Binary struct {
	Lhs, Rhs Expression
	Op       BinaryOp
	Bw       uint
}

func (e *Binary) Bitwidth() uint { return e.Bw }
func (*Binary) isExpression()    {}

// NewBinary constructs a Binary expression. Callers (the expression
// visitor) are expected to have already unified lhs/rhs bit-widths and
// applied constant folding before reaching here; NewBinary only fixes Bw
// according to the op's relational/logical classification.
func NewBinary(lhs Expression, op BinaryOp, rhs Expression) *Binary {
	bw := lhs.Bitwidth()
	if op.IsRelational() {
		bw = 1
	}

	return &Binary{Lhs: lhs, Rhs: rhs, Op: op, Bw: bw}
}

// Shift is lhs shifted by a (non bit-width-carrying) amount. Its bit-width
// always equals lhs's.
type Shift struct {
	Lhs    Expression
	Op     ShiftOp
	Amount Number
}

func (e *Shift) Bitwidth() uint { return e.Lhs.Bitwidth() }
func (*Shift) isExpression()    {}

// NewShift constructs a Shift expression.
func NewShift(lhs Expression, op ShiftOp, amount Number) *Shift {
	return &Shift{Lhs: lhs, Op: op, Amount: amount}
}

// AsConstant returns the folded constant value of expr, if foldable to a
// known u32 at the current point of analysis (a Numeric whose Number has a
// known ConstantValue). Used by the constant-folding helpers in
// pkg/syrec/analyzer to decide whether both operands of a Binary/Shift are
// foldable.
func AsConstant(expr Expression) (value uint32, ok bool) {
	n, isNumeric := expr.(*Numeric)
	if !isNumeric {
		return 0, false
	}

	v, known := n.Value.ConstantValue().Get()
	if !known {
		return 0, false
	}

	return uint32(v), true
}
