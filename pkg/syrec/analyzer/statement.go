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
	"github.com/syrec-lang/syrec/pkg/util/source"
)

// buildStatements builds each statement in order, dropping (but not
// aborting on) any that fail to build.
func (a *Analyzer) buildStatements(nodes []parsetree.StatementNode) []ir.Statement {
	out := make([]ir.Statement, 0, len(nodes))

	for _, n := range nodes {
		if s := a.buildStatement(n); s != nil {
			out = append(out, s)
		}
	}

	return out
}

func (a *Analyzer) buildStatement(node parsetree.StatementNode) ir.Statement {
	switch n := node.(type) {
	case *parsetree.AssignNode:
		return a.buildAssign(n)
	case *parsetree.UnaryAssignNode:
		return a.buildUnaryAssign(n)
	case *parsetree.SwapNode:
		return a.buildSwap(n)
	case *parsetree.IfNode:
		return a.buildIf(n)
	case *parsetree.ForNode:
		return a.buildFor(n)
	case *parsetree.CallNode:
		return a.buildCall(n)
	case *parsetree.UncallNode:
		return a.buildUncall(n)
	case *parsetree.SkipNode:
		return &ir.Skip{Line: n.Pos}
	default:
		return nil
	}
}

func (a *Analyzer) buildAssign(n *parsetree.AssignNode) ir.Statement {
	target, ok := a.buildVariableAccess(n.Target, a.settings.DefaultBitwidth)
	if !ok {
		return nil
	}

	if !target.Variable.Kind.Writable() {
		a.diags.Add(diagnostics.New(diagnostics.AssignmentToReadonlyVariable, n.Position(),
			"cannot assign to read-only variable %q", target.Variable.Identifier))
	}

	var rhs ir.Expression
	var rhsOk bool

	a.withForbiddenAccess(target, func() {
		rhs, rhsOk = a.buildExpression(n.Rhs, target.Bitwidth())
	})

	if !rhsOk {
		return nil
	}

	if target.Bitwidth() != rhs.Bitwidth() {
		a.diags.Add(diagnostics.New(diagnostics.BitWidthMismatch, n.Position(),
			"assignment target is %d bits wide, right-hand side is %d", target.Bitwidth(), rhs.Bitwidth()))
	}

	return &ir.Assign{Target: target, Op: mapAssignOp(n.Op), Rhs: rhs, Line: n.Position()}
}

func (a *Analyzer) buildUnaryAssign(n *parsetree.UnaryAssignNode) ir.Statement {
	target, ok := a.buildVariableAccess(n.Target, a.settings.DefaultBitwidth)
	if !ok {
		return nil
	}

	if !target.Variable.Kind.Writable() {
		a.diags.Add(diagnostics.New(diagnostics.AssignmentToReadonlyVariable, n.Position(),
			"cannot assign to read-only variable %q", target.Variable.Identifier))
	}

	return &ir.UnaryAssign{Op: mapUnaryOp(n.Op), Target: target, Line: n.Position()}
}

func (a *Analyzer) buildSwap(n *parsetree.SwapNode) ir.Statement {
	lhs, lok := a.buildVariableAccess(n.Lhs, a.settings.DefaultBitwidth)
	if !lok {
		return nil
	}

	if !lhs.Variable.Kind.Writable() {
		a.diags.Add(diagnostics.New(diagnostics.AssignmentToReadonlyVariable, n.Position(),
			"cannot swap into read-only variable %q", lhs.Variable.Identifier))
	}

	var rhs *ir.VariableAccess
	var rok bool

	a.withForbiddenAccess(lhs, func() {
		rhs, rok = a.buildVariableAccess(n.Rhs, lhs.Bitwidth())
	})

	if !rok {
		return nil
	}

	if !rhs.Variable.Kind.Writable() {
		a.diags.Add(diagnostics.New(diagnostics.AssignmentToReadonlyVariable, n.Position(),
			"cannot swap into read-only variable %q", rhs.Variable.Identifier))
	}

	if lhs.Bitwidth() != rhs.Bitwidth() {
		a.diags.Add(diagnostics.New(diagnostics.BitWidthMismatch, n.Position(),
			"swap operands differ in width: %d vs %d", lhs.Bitwidth(), rhs.Bitwidth()))
	}

	return &ir.Swap{Lhs: lhs, Rhs: rhs, Line: n.Position()}
}

func (a *Analyzer) buildIf(n *parsetree.IfNode) ir.Statement {
	cond, cok := a.buildExpression(n.Cond, 1)
	if !cok {
		return nil
	}

	if cond.Bitwidth() != 1 {
		a.diags.Add(diagnostics.New(diagnostics.BitWidthMismatch, n.Position(), "if condition must be 1 bit wide, found %d", cond.Bitwidth()))
	}

	thenBody := a.buildStatements(n.ThenBody)
	elseBody := a.buildStatements(n.ElseBody)

	fiCond, fok := a.buildExpression(n.FiCond, 1)
	if !fok {
		return nil
	}

	if fiCond.Bitwidth() != 1 {
		a.diags.Add(diagnostics.New(diagnostics.BitWidthMismatch, n.Position(), "fi condition must be 1 bit wide, found %d", fiCond.Bitwidth()))
	}

	if !guardsMatch(cond, fiCond) {
		a.diags.Add(diagnostics.New(diagnostics.IfGuardExpressionMismatch, n.Position(), "fi condition does not structurally match the if condition"))
	}

	return &ir.If{Cond: cond, ThenBody: thenBody, ElseBody: elseBody, FiCond: fiCond, Line: n.Position()}
}

func (a *Analyzer) buildFor(n *parsetree.ForNode) ir.Statement {
	var loopVarIdentifier string
	if n.LoopVar != nil {
		loopVarIdentifier = symtab.LoopVarSigil + *n.LoopVar
	}

	previousForbidden := a.forbiddenLoopVar
	if loopVarIdentifier != "" {
		a.forbiddenLoopVar = util.Some(loopVarIdentifier)
	}

	to := a.buildRangeBound(n.To)

	from := to
	if n.From != nil {
		from = a.buildNumber(n.From)
	}

	step := ir.Number(ir.NewConstantInt(1))
	if n.Step != nil {
		step = a.buildNumber(n.Step)
	}

	a.forbiddenLoopVar = previousForbidden

	if n.NegativeStep {
		a.diags.Add(diagnostics.New(diagnostics.NegativeStepNotAllowed, n.Position(), "for-loop step may not be negative"))
	}

	known := util.None[uint]()
	if fv, fok := from.ConstantValue().Get(); fok {
		if tv, tok := to.ConstantValue().Get(); tok && tv == fv {
			known = util.Some(fv)
		}
	}

	log.Debugf("entering for-loop at %s, loop variable known=%v", n.Position(), known.HasValue())

	a.scopes.Push()
	defer a.scopes.Pop()

	if loopVarIdentifier != "" {
		a.scopes.ActiveScope().InsertLoopVar(loopVarIdentifier, known)
	}

	body := a.buildStatements(n.Body)

	result := &ir.For{
		Range: ir.NumberRange{From: from, To: to},
		Step:  step,
		Body:  body,
		Line:  n.Position(),
	}

	if loopVarIdentifier != "" {
		result.LoopVar = util.Some(loopVarIdentifier)
	}

	return result
}

// buildRangeBound resolves a For statement's upper bound. A nil bound here
// would be a malformed parse tree (the upper bound is never itself
// omittable — it is the one number "for m do" always supplies); it is built
// as ConstantInt(0) so analysis can continue, without a diagnostic.
func (a *Analyzer) buildRangeBound(node parsetree.NumberNode) ir.Number {
	if node == nil {
		return ir.NewConstantInt(0)
	}

	return a.buildNumber(node)
}

func (a *Analyzer) buildCall(n *parsetree.CallNode) ir.Statement {
	target, ok := a.resolveCallTarget(n.Position(), n.ModuleIdent, n.CalleeArgs)
	if !ok {
		return nil
	}

	return &ir.Call{Target: target, Arguments: n.CalleeArgs, Line: n.Position()}
}

func (a *Analyzer) buildUncall(n *parsetree.UncallNode) ir.Statement {
	target, ok := a.resolveCallTarget(n.Position(), n.ModuleIdent, n.CalleeArgs)
	if !ok {
		return nil
	}

	return &ir.Uncall{Target: target, Arguments: n.CalleeArgs, Line: n.Position()}
}

// resolveCallTarget resolves a call/uncall's target module and caller
// arguments per §4.2, recording a diagnostic and returning ok=false for
// every unsuccessful outcome (unknown module, arity/kind mismatch, or an
// ambiguous match).
func (a *Analyzer) resolveCallTarget(pos source.Position, identifier string, argNames []string) (*ir.Module, bool) {
	callerArgs := make([]*ir.Variable, len(argNames))

	for i, name := range argNames {
		v, ok := a.scopes.LookupSignal(name)
		if !ok {
			a.diags.Add(diagnostics.New(diagnostics.NoVariableMatchingIdentifier, pos, "no variable named %q in scope", name))
			continue
		}

		callerArgs[i] = v
	}

	if len(a.registry.Overloads(identifier)) == 0 {
		a.diags.Add(diagnostics.New(diagnostics.UnknownModule, pos, "no module named %q is declared", identifier))
		return nil, false
	}

	outcome, target := a.registry.ResolveCall(identifier, callerArgs)

	switch outcome {
	case symtab.SingleMatchFound:
		log.WithFields(log.Fields{"callee": identifier, "position": pos}).Debug("resolved call target")
		return target, true
	case symtab.MultipleMatchesFound:
		a.diags.Add(diagnostics.New(diagnostics.AmbiguousOverload, pos, "call to %q matches more than one overload", identifier))
	case symtab.CallerArgumentsInvalid:
		// Already diagnosed per missing argument identifier above.
	default:
		a.diags.Add(diagnostics.New(diagnostics.NoMatchingOverload, pos, "no overload of %q accepts these arguments", identifier))
	}

	return nil, false
}

func mapAssignOp(op parsetree.AssignOp) ir.AssignOp {
	switch op {
	case "-=":
		return ir.AssignSubtract
	case "^=":
		return ir.AssignExor
	default:
		return ir.AssignAdd
	}
}

func mapUnaryOp(op parsetree.UnaryOp) ir.UnaryStatementOp {
	switch op {
	case "++=":
		return ir.Increment
	case "--=":
		return ir.Decrement
	default:
		return ir.Invert
	}
}
