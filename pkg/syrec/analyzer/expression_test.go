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
package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syrec-lang/syrec/pkg/syrec/analyzer"
	"github.com/syrec-lang/syrec/pkg/syrec/diagnostics"
	"github.com/syrec-lang/syrec/pkg/syrec/ir"
	"github.com/syrec-lang/syrec/pkg/syrec/parsetree"
)

// analyzeSingleAssign wraps a single assignment "out += rhs" in a module
// with one 4-bit "out" and one 4-bit "b" parameter (so rhs can reference a
// signal distinct from the assignment target without tripping the
// self-assignment overlap check), returning the analyzed program's sole
// statement for inspection.
func analyzeSingleAssign(t *testing.T, settings analyzer.Settings, rhs parsetree.ExpressionNode) (*ir.Assign, *analyzer.Analyzer) {
	t.Helper()

	tree := program(module("m", []*parsetree.Param{outParam("out", 4), inoutParam("b", 4)}, []parsetree.StatementNode{
		&parsetree.AssignNode{Pos: pos, Target: &parsetree.VariableAccess{Pos: pos, Identifier: "out"}, Op: "+=", Rhs: rhs},
	}))

	a := analyzer.New(settings)
	p := a.AnalyzeProgram(tree)

	require.Len(t, p.Modules, 1)
	require.Len(t, p.Modules[0].Statements, 1)

	assign, ok := p.Modules[0].Statements[0].(*ir.Assign)
	require.True(t, ok)

	return assign, a
}

// (3+5) against a 4-bit target folds below the truncation threshold, so the
// result is simply the sum: 8.
func TestFoldBinaryWithinRange(t *testing.T) {
	rhs := binExpr(numExpr(intLit(3)), "+", numExpr(intLit(5)))

	assign, a := analyzeSingleAssign(t, analyzer.DefaultSettings(), rhs)

	assert.False(t, a.Diagnostics().HasErrors())

	num, ok := assign.Rhs.(*ir.Numeric)
	require.True(t, ok)
	assert.Equal(t, uint(4), num.Bitwidth())

	v, ok := num.Value.ConstantValue().Get()
	require.True(t, ok)
	assert.Equal(t, uint(8), v)
}

// (15+2) against a 4-bit target overflows the 4-bit range and truncates
// under TruncateModulo: 17 % 15 == 2.
func TestFoldBinaryTruncatesModulo(t *testing.T) {
	rhs := binExpr(numExpr(intLit(15)), "+", numExpr(intLit(2)))

	settings := analyzer.Settings{DefaultBitwidth: 32, IntegerTruncationMode: ir.TruncateModulo}
	assign, a := analyzeSingleAssign(t, settings, rhs)

	assert.False(t, a.Diagnostics().HasErrors())

	num, ok := assign.Rhs.(*ir.Numeric)
	require.True(t, ok)
	assert.Equal(t, uint(4), num.Bitwidth())

	v, ok := num.Value.ConstantValue().Get()
	require.True(t, ok)
	assert.Equal(t, uint(2), v)
}

// Division by a constant zero is never folded; the Binary node survives
// structurally and a DivisionByZero diagnostic is recorded.
func TestFoldDivisionByZeroPreservesStructure(t *testing.T) {
	rhs := binExpr(numExpr(intLit(10)), "/", numExpr(intLit(0)))

	assign, a := analyzeSingleAssign(t, analyzer.DefaultSettings(), rhs)

	binary, ok := assign.Rhs.(*ir.Binary)
	require.True(t, ok)
	assert.Equal(t, ir.Divide, binary.Op)

	foundDivByZero := false
	for _, d := range a.Diagnostics().Entries() {
		if d.Kind == diagnostics.DivisionByZero {
			foundDivByZero = true
		}
	}
	assert.True(t, foundDivByZero)
}

// A single constant operand equal to the operator's identity element
// collapses the whole expression to the other operand.
func TestFoldIdentityCollapse(t *testing.T) {
	rhs := binExpr(signalExpr("b"), "+", numExpr(intLit(0)))

	assign, a := analyzeSingleAssign(t, analyzer.DefaultSettings(), rhs)

	assert.False(t, a.Diagnostics().HasErrors())

	_, isVarExpr := assign.Rhs.(*ir.VariableExpr)
	assert.True(t, isVarExpr)
}

// A bare literal operand takes on its sibling's bit-width rather than the
// default, so adding a variable to a literal never spuriously mismatches.
func TestUnifyOperandsRetargetsBareLiteral(t *testing.T) {
	rhs := binExpr(signalExpr("b"), "+", numExpr(intLit(1)))

	assign, a := analyzeSingleAssign(t, analyzer.DefaultSettings(), rhs)

	assert.False(t, a.Diagnostics().HasErrors())
	assert.Equal(t, uint(4), assign.Rhs.Bitwidth())
}
