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
package analyzer

import (
	log "github.com/sirupsen/logrus"

	"github.com/syrec-lang/syrec/pkg/syrec/diagnostics"
	"github.com/syrec-lang/syrec/pkg/syrec/ir"
	"github.com/syrec-lang/syrec/pkg/syrec/parsetree"
	"github.com/syrec-lang/syrec/pkg/syrec/symtab"
	"github.com/syrec-lang/syrec/pkg/util"
)

// buildNumber resolves a parse-tree Number node against the current scope
// stack. It never fails outright: an unresolved signal or loop-variable
// identifier records a diagnostic and yields a ConstantInt(0) placeholder,
// so the caller always has a Number to continue building with.
func (a *Analyzer) buildNumber(node parsetree.NumberNode) ir.Number {
	switch n := node.(type) {
	case *parsetree.IntLiteral:
		return ir.NewConstantInt(n.Value)

	case *parsetree.SignalWidth:
		v, ok := a.scopes.LookupSignal(n.Identifier)
		if !ok {
			a.diags.Add(diagnostics.New(diagnostics.NoVariableMatchingIdentifier, n.Position(),
				"no variable named %q in scope", n.Identifier))
			return ir.NewConstantInt(0)
		}

		return ir.NewConstantInt(v.Bitwidth)

	case *parsetree.LoopVarNumber:
		return a.buildLoopVarNumber(n)

	case *parsetree.NumberExpr:
		lhs := a.buildNumber(n.Lhs)
		rhs := a.buildNumber(n.Rhs)
		op := mapNumberOp(n.Op)

		num, ok := ir.NewNumber(lhs, rhs, op)
		if !ok {
			log.Debugf("division by zero folding constant expression at %s", n.Position())
			a.diags.Add(diagnostics.New(diagnostics.DivisionByZero, n.Position(), "division by zero in constant expression"))
		}

		return num

	default:
		return ir.NewConstantInt(0)
	}
}

func (a *Analyzer) buildLoopVarNumber(n *parsetree.LoopVarNumber) ir.Number {
	identifier := symtab.LoopVarSigil + n.Name

	if forbidden, ok := a.forbiddenLoopVar.Get(); ok && forbidden == identifier {
		a.diags.Add(diagnostics.New(diagnostics.LoopVariableSelfReference, n.Position(),
			"loop variable %q cannot be used within its own range expression", identifier))
		return ir.NewConstantInt(0)
	}

	known, ok := a.scopes.LookupLoopVar(identifier)
	if !ok {
		a.diags.Add(diagnostics.New(diagnostics.NoVariableMatchingIdentifier, n.Position(),
			"no loop variable named %q in scope", identifier))
		return ir.NewLoopVarRef(identifier, util.None[uint]())
	}

	return ir.NewLoopVarRef(identifier, known)
}

func mapNumberOp(op parsetree.NumberBinOp) ir.NumberOp {
	switch op {
	case parsetree.NumSubtract:
		return ir.NumberSubtract
	case parsetree.NumMultiply:
		return ir.NumberMultiply
	case parsetree.NumDivide:
		return ir.NumberDivide
	default:
		return ir.NumberAdd
	}
}
