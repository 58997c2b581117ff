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
	"github.com/syrec-lang/syrec/pkg/util"
	"github.com/syrec-lang/syrec/pkg/util/source"
)

// buildExpression resolves a parse-tree expression node into an
// ir.Expression, applying constant folding and bit-width unification along
// the way (§4.1, §4.3). expected is the bit-width a bare numeric literal
// should be assigned absent any other information (the surrounding
// assignment target's width, 1 for an if/fi guard, or the configured default
// for the index expressions of an assignment or swap target). ok is false
// only when the node could not be given any Expression at all (an
// unresolved variable access); everything else degrades to a best-effort
// node plus a recorded diagnostic.
func (a *Analyzer) buildExpression(node parsetree.ExpressionNode, expected uint) (ir.Expression, bool) {
	switch n := node.(type) {
	case *parsetree.NumberExprNode:
		num := a.buildNumber(n.Number)
		return ir.NewNumeric(num, expected), true

	case *parsetree.SignalExprNode:
		access, ok := a.buildVariableAccess(n.Access, expected)
		if !ok {
			return nil, false
		}

		return ir.NewVariableExpr(access), true

	case *parsetree.BinaryExprNode:
		lhs, lok := a.buildExpression(n.Lhs, expected)
		rhs, rok := a.buildExpression(n.Rhs, expected)

		if !lok || !rok {
			return nil, false
		}

		op, ok := mapBinOp(n.Op)
		if !ok {
			a.diags.Add(diagnostics.New(diagnostics.BitWidthMismatch, n.Position(), "unknown binary operator %q", n.Op))
			return lhs, true
		}

		return a.combineBinary(n.Position(), lhs, op, rhs), true

	case *parsetree.UnaryExprNode:
		return a.buildUnary(n, expected)

	case *parsetree.ShiftExprNode:
		return a.buildShift(n, expected)

	default:
		return nil, false
	}
}

// combineBinary implements §4.1: unify operand widths; preserve a division by
// a constant zero structurally with a DivisionByZero diagnostic, whether or
// not lhs is constant (rule 3); fold when both sides are constant —
// truncating the folded result to the operand width per the configured
// mode, and folding FracDivide only at a non-zero operand width; otherwise
// collapse an identity-element operand, otherwise build a plain Binary node.
func (a *Analyzer) combineBinary(pos source.Position, lhs ir.Expression, op ir.BinaryOp, rhs ir.Expression) ir.Expression {
	lhs, rhs = a.unifyOperands(lhs, rhs)

	lv, lok := ir.AsConstant(lhs)
	rv, rok := ir.AsConstant(rhs)

	if op.IsDivisionClass() && rok && rv == 0 {
		a.diags.Add(diagnostics.New(diagnostics.DivisionByZero, pos, "division by zero in expression"))
		return ir.NewBinary(lhs, op, rhs)
	}

	if lok && rok && (op != ir.FracDivide || lhs.Bitwidth() != 0) {
		result, _ := op.Eval(lv, rv)
		bw := lhs.Bitwidth()
		if op.IsRelational() {
			bw = 1
		}

		truncated := ir.Truncate(result, bw, a.settings.IntegerTruncationMode)

		log.WithFields(log.Fields{
			"op":     op.Symbol(),
			"result": result,
			"folded": truncated,
			"width":  bw,
		}).Debug("folded constant binary expression")

		return ir.NewNumeric(ir.NewConstantInt(uint(truncated)), bw)
	}

	if collapsed, did := tryIdentityCollapse(lhs, op, rhs); did {
		return collapsed
	}

	if lhs.Bitwidth() != rhs.Bitwidth() {
		a.diags.Add(diagnostics.New(diagnostics.BitWidthMismatch, pos,
			"operand bit-widths differ: %d vs %d", lhs.Bitwidth(), rhs.Bitwidth()))
	}

	return ir.NewBinary(lhs, op, rhs)
}

// unifyOperands retargets a bare Numeric operand (one that carries no
// intrinsic width of its own) onto the other operand's bit-width, applying
// truncation to its value if it is constant. Two Numeric operands, or two
// non-Numeric operands, are left as built.
func (a *Analyzer) unifyOperands(lhs, rhs ir.Expression) (ir.Expression, ir.Expression) {
	ln, lIsNum := lhs.(*ir.Numeric)
	rn, rIsNum := rhs.(*ir.Numeric)

	switch {
	case lIsNum && !rIsNum:
		return a.retarget(ln, rhs.Bitwidth()), rhs
	case rIsNum && !lIsNum:
		return lhs, a.retarget(rn, lhs.Bitwidth())
	default:
		return lhs, rhs
	}
}

func (a *Analyzer) retarget(n *ir.Numeric, bw uint) *ir.Numeric {
	if v, ok := n.Value.ConstantValue().Get(); ok {
		truncated := ir.Truncate(uint32(v), bw, a.settings.IntegerTruncationMode)
		return ir.NewNumeric(ir.NewConstantInt(uint(truncated)), bw)
	}

	return ir.NewNumeric(n.Value, bw)
}

// tryIdentityCollapse implements §4.1 rule 2: when exactly one operand is
// constant and equals the operator's identity element on that side, the
// whole expression collapses to the other (non-constant) operand.
func tryIdentityCollapse(lhs ir.Expression, op ir.BinaryOp, rhs ir.Expression) (ir.Expression, bool) {
	if lv, ok := ir.AsConstant(lhs); ok {
		if id, has := op.LhsIdentity().Get(); has && lv == id {
			return rhs, true
		}
	}

	if rv, ok := ir.AsConstant(rhs); ok {
		if id, has := op.RhsIdentity().Get(); has && rv == id {
			return lhs, true
		}
	}

	return nil, false
}

// buildUnary lowers "!e"/"~e" to a Binary(Exor, e, mask) per the project's
// resolved unary design decision: a 1-bit operand XORs against 1 (logical
// negation); any other width XORs against a mask of all-ones at that width
// (bitwise complement).
func (a *Analyzer) buildUnary(n *parsetree.UnaryExprNode, expected uint) (ir.Expression, bool) {
	operand, ok := a.buildExpression(n.Operand, expected)
	if !ok {
		return nil, false
	}

	bw := operand.Bitwidth()

	var mask uint
	if n.Op == parsetree.UnaryLogicalNot && bw == 1 {
		mask = 1
	} else {
		mask = uint(ir.Truncate(0xFFFFFFFF, bw, ir.TruncateBitwiseAnd))
	}

	maskExpr := ir.NewNumeric(ir.NewConstantInt(mask), bw)

	return a.combineBinary(n.Position(), operand, ir.Exor, maskExpr), true
}

// buildShift folds a shift whose left operand and amount are both constant;
// otherwise builds a structural Shift node. A shift's amount is a Number,
// not an Expression, so it is never itself subject to bit-width unification.
func (a *Analyzer) buildShift(n *parsetree.ShiftExprNode, expected uint) (ir.Expression, bool) {
	lhs, ok := a.buildExpression(n.Lhs, expected)
	if !ok {
		return nil, false
	}

	amount := a.buildNumber(n.Amount)
	op := ir.ShiftLeft
	if n.Op == parsetree.ShiftExprRight {
		op = ir.ShiftRight
	}

	if lv, lok := ir.AsConstant(lhs); lok {
		if av, aok := amount.ConstantValue().Get(); aok {
			result := op.Eval(lv, uint32(av))
			return ir.NewNumeric(ir.NewConstantInt(uint(result)), lhs.Bitwidth()), true
		}
	}

	return ir.NewShift(lhs, op, amount), true
}

var exprBinOpSymbols = map[parsetree.ExprBinOp]ir.BinaryOp{
	"+": ir.Add, "-": ir.Subtract, "^": ir.Exor, "*": ir.Multiply,
	"/": ir.Divide, "*>": ir.FracDivide, "%": ir.Modulo,
	"&": ir.BitwiseAnd, "|": ir.BitwiseOr,
	"&&": ir.LogicalAnd, "||": ir.LogicalOr,
	"=": ir.Equals, "!=": ir.NotEquals,
	"<": ir.LessThan, ">": ir.GreaterThan,
	"<=": ir.LessEquals, ">=": ir.GreaterEquals,
}

func mapBinOp(op parsetree.ExprBinOp) (ir.BinaryOp, bool) {
	mapped, ok := exprBinOpSymbols[op]
	return mapped, ok
}

// buildVariableAccess resolves a parse-tree access into an ir.VariableAccess,
// checking it for overlap against the active restriction registry (§4.3)
// along the way. Index and bit-range values are not range-checked here
// (validate.ValidateAccess is not called). expected is passed down to
// index-expression construction only; the access's own bit-width always
// comes from its variable or bit range, never from the caller's context.
func (a *Analyzer) buildVariableAccess(node *parsetree.VariableAccess, expected uint) (*ir.VariableAccess, bool) {
	variable, ok := a.scopes.LookupSignal(node.Identifier)
	if !ok {
		a.diags.Add(diagnostics.New(diagnostics.NoVariableMatchingIdentifier, node.Position(),
			"no variable named %q in scope", node.Identifier))
		return nil, false
	}

	indices := make([]ir.Expression, 0, len(node.Indices))
	for _, idxNode := range node.Indices {
		idx, ok := a.buildExpression(idxNode, expected)
		if !ok {
			continue
		}

		indices = append(indices, idx)
	}

	var bitRange util.Option[ir.BitRange]
	if node.Range != nil {
		start := a.buildNumber(node.Range.Start)
		end := a.buildNumber(node.Range.End)

		if differentUnknownLoopVars(start, end) {
			a.diags.Add(diagnostics.New(diagnostics.UndecidableBitWidth, node.Position(),
				"bit range endpoints reference different loop variables; width cannot be determined"))
		}

		bitRange = util.Some(ir.BitRange{Start: start, End: end})
	}

	access := ir.NewVariableAccess(variable, indices, bitRange)

	if forbidden, ok := a.forbiddenAccess.Get(); ok {
		a.checkSelfAssignmentOverlap(node.Position(), forbidden, access)
	}

	return access, true
}

// differentUnknownLoopVars reports whether start and end are each a
// LoopVarRef with unknown value, naming two distinct loop variables —
// spec.md's explicit UndecidableBitWidth case.
func differentUnknownLoopVars(start, end ir.Number) bool {
	sRef, sOk := start.(*ir.LoopVarRef)
	eRef, eOk := end.(*ir.LoopVarRef)

	if !sOk || !eOk {
		return false
	}

	_, sKnown := start.ConstantValue().Get()
	_, eKnown := end.ConstantValue().Get()

	return !sKnown && !eKnown && sRef.Name != eRef.Name
}
