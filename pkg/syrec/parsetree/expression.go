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
package parsetree

import "github.com/syrec-lang/syrec/pkg/util/source"

// ExpressionNode is one of the five "Expressions" productions from §6:
// number, signal, binary, unary, shift.
type ExpressionNode interface {
	Node
	isExpressionNode()
}

// NumberExprNode wraps a NumberNode as an expression.
type NumberExprNode struct {
	Pos    source.Position
	Number NumberNode
}

func (e *NumberExprNode) Position() source.Position { return e.Pos }
func (*NumberExprNode) isExpressionNode()            {}

// SignalExprNode wraps a VariableAccess as an expression.
type SignalExprNode struct {
	Pos    source.Position
	Access *VariableAccess
}

func (e *SignalExprNode) Position() source.Position { return e.Pos }
func (*SignalExprNode) isExpressionNode()            {}

// ExprBinOp is the textual operator of a parenthesised binary expression
// "(e op e)"; the analyzer maps it onto ir.BinaryOp.
type ExprBinOp string

// BinaryExprNode is "(e op e)".
type BinaryExprNode struct {
	Pos      source.Position
	Lhs, Rhs ExpressionNode
	Op       ExprBinOp
}

func (e *BinaryExprNode) Position() source.Position { return e.Pos }
func (*BinaryExprNode) isExpressionNode()            {}

// UnaryExprOp is the operator of a unary expression: logical-not "!" or
// bitwise-not "~".
type UnaryExprOp uint8

const (
	UnaryLogicalNot UnaryExprOp = iota
	UnaryBitwiseNot
)

// UnaryExprNode is "!e" or "~e". spec.md's IR has no dedicated unary
// variant; the analyzer lowers this to a Binary(Exor, ...) per the
// project's resolved design decision (see pkg/syrec/analyzer/expression.go).
type UnaryExprNode struct {
	Pos     source.Position
	Op      UnaryExprOp
	Operand ExpressionNode
}

func (e *UnaryExprNode) Position() source.Position { return e.Pos }
func (*UnaryExprNode) isExpressionNode()            {}

// ShiftExprOp is the operator of a shift expression.
type ShiftExprOp uint8

const (
	ShiftExprLeft ShiftExprOp = iota
	ShiftExprRight
)

// ShiftExprNode is "(e << n)" or "(e >> n)".
type ShiftExprNode struct {
	Pos    source.Position
	Lhs    ExpressionNode
	Op     ShiftExprOp
	Amount NumberNode
}

func (e *ShiftExprNode) Position() source.Position { return e.Pos }
func (*ShiftExprNode) isExpressionNode()            {}
