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

import (
	"github.com/syrec-lang/syrec/pkg/util"
	"github.com/syrec-lang/syrec/pkg/util/source"
)

// Statement is a SyReC reversible statement: a sum over {Assign,
// UnaryAssign, Swap, If, For, Call, Uncall, Skip}.
type Statement interface {
	Position() source.Position
	isStatement()
}

// Assign is "target op= rhs".
type Assign struct {
	Target *VariableAccess
	Op     AssignOp
	Rhs    Expression
	Line   source.Position
}

func (s *Assign) Position() source.Position { return s.Line }
func (*Assign) isStatement()                {}

// UnaryAssign is "op target" (~=, ++=, --=).
type UnaryAssign struct {
	Op     UnaryStatementOp
	Target *VariableAccess
	Line   source.Position
}

func (s *UnaryAssign) Position() source.Position { return s.Line }
func (*UnaryAssign) isStatement()                {}

// Swap is "lhs <=> rhs".
type Swap struct {
	Lhs, Rhs *VariableAccess
	Line     source.Position
}

func (s *Swap) Position() source.Position { return s.Line }
func (*Swap) isStatement()                {}

// If is "if cond then thenBody else elseBody fi fiCond". Reversibility
// requires fiCond to re-derive the same boolean as cond; the analyzer
// checks this structurally (see the expression-components recorder in
// pkg/syrec/analyzer/ifguard.go) rather than evaluating either condition.
type If struct {
	Cond               Expression
	ThenBody, ElseBody []Statement
	FiCond             Expression
	Line               source.Position
}

func (s *If) Position() source.Position { return s.Line }
func (*If) isStatement()                {}

// NumberRange is a For statement's (from, to) bound pair.
type NumberRange struct {
	From, To Number
}

// For is "for [[$x =] from to] to [step [-] step] do body rof". LoopVar is
// empty when the concrete syntax omitted the "$x =" binding.
type For struct {
	LoopVar util.Option[string]
	Range   NumberRange
	Step    Number
	Body    []Statement
	Line    source.Position
}

func (s *For) Position() source.Position { return s.Line }
func (*For) isStatement()                {}

// Call is "call target(args)"; Uncall is its reverse counterpart. Target is
// a non-owning reference into the containing Program's module table — it
// must never be the sole owner keeping a Module alive, since the Module's
// own statement list may itself contain the Call/Uncall that targets it
// (a self-recursive module), which would otherwise be a reference cycle.
type Call struct {
	Target    *Module
	Arguments []string
	Line      source.Position
}

func (s *Call) Position() source.Position { return s.Line }
func (*Call) isStatement()                {}

// Uncall is the reversed counterpart of Call.
type Uncall struct {
	Target    *Module
	Arguments []string
	Line      source.Position
}

func (s *Uncall) Position() source.Position { return s.Line }
func (*Uncall) isStatement()                {}

// Skip is the no-op statement.
type Skip struct {
	Line source.Position
}

func (s *Skip) Position() source.Position { return s.Line }
func (*Skip) isStatement()                {}
