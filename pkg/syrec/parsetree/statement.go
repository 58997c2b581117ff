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

// StatementNode is one of the eight statement productions from §6.
type StatementNode interface {
	Node
	isStatementNode()
}

// AssignOp is the textual assignment operator ("+=", "-=", "^=").
type AssignOp string

// AssignNode is "var op= expr".
type AssignNode struct {
	Pos    source.Position
	Target *VariableAccess
	Op     AssignOp
	Rhs    ExpressionNode
}

func (s *AssignNode) Position() source.Position { return s.Pos }
func (*AssignNode) isStatementNode()             {}

// UnaryOp is the textual unary-statement operator ("~=", "++=", "--=").
type UnaryOp string

// UnaryAssignNode is "op var".
type UnaryAssignNode struct {
	Pos    source.Position
	Op     UnaryOp
	Target *VariableAccess
}

func (s *UnaryAssignNode) Position() source.Position { return s.Pos }
func (*UnaryAssignNode) isStatementNode()             {}

// SwapNode is "lhs <=> rhs".
type SwapNode struct {
	Pos      source.Position
	Lhs, Rhs *VariableAccess
}

func (s *SwapNode) Position() source.Position { return s.Pos }
func (*SwapNode) isStatementNode()             {}

// IfNode is "if expr then … else … fi expr".
type IfNode struct {
	Pos                source.Position
	Cond               ExpressionNode
	ThenBody, ElseBody []StatementNode
	FiCond             ExpressionNode
}

func (s *IfNode) Position() source.Position { return s.Pos }
func (*IfNode) isStatementNode()            {}

// ForNode is "for [[$x =] n to] m [step [-] s] do … rof". LoopVar is nil
// when "$x =" was omitted; From is nil when the range had only one bound
// ("for m do"), in which case the analyzer treats from == to.
type ForNode struct {
	Pos          source.Position
	LoopVar      *string
	From, To     NumberNode
	Step         NumberNode
	NegativeStep bool
	Body         []StatementNode
}

func (s *ForNode) Position() source.Position { return s.Pos }
func (*ForNode) isStatementNode()            {}

// CallNode is "call ident(argList)"; UncallNode is its reverse counterpart.
type CallNode struct {
	Pos         source.Position
	ModuleIdent string
	CalleeArgs  []string
}

func (s *CallNode) Position() source.Position { return s.Pos }
func (*CallNode) isStatementNode()            {}

// UncallNode is "uncall ident(argList)".
type UncallNode struct {
	Pos         source.Position
	ModuleIdent string
	CalleeArgs  []string
}

func (s *UncallNode) Position() source.Position { return s.Pos }
func (*UncallNode) isStatementNode()            {}

// SkipNode is the no-op statement.
type SkipNode struct {
	Pos source.Position
}

func (s *SkipNode) Position() source.Position { return s.Pos }
func (*SkipNode) isStatementNode()            {}
