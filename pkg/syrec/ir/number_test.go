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
package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syrec-lang/syrec/pkg/syrec/ir"
	"github.com/syrec-lang/syrec/pkg/util"
)

func TestNewNumberFoldsConstantOperands(t *testing.T) {
	n, ok := ir.NewNumber(ir.NewConstantInt(3), ir.NewConstantInt(5), ir.NumberAdd)
	assert.True(t, ok)

	ci, isConst := n.(*ir.ConstantInt)
	assert.True(t, isConst)
	assert.Equal(t, uint(8), ci.Value)
}

func TestNewNumberPreservesDivisionByZero(t *testing.T) {
	n, ok := ir.NewNumber(ir.NewConstantInt(4), ir.NewConstantInt(0), ir.NumberDivide)
	assert.False(t, ok)

	_, isExpr := n.(*ir.ConstExpr)
	assert.True(t, isExpr)
}

func TestNewNumberPreservesNonConstantOperand(t *testing.T) {
	loopVar := ir.NewLoopVarRef("$i", util.None[uint]())
	n, ok := ir.NewNumber(ir.NewConstantInt(3), loopVar, ir.NumberAdd)
	assert.True(t, ok)

	expr, isExpr := n.(*ir.ConstExpr)
	assert.True(t, isExpr)

	_, known := expr.ConstantValue().Get()
	assert.False(t, known)
}

func TestLoopVarRefConstantValueTracksScopeSnapshot(t *testing.T) {
	unknown := ir.NewLoopVarRef("$i", util.None[uint]())
	_, ok := unknown.ConstantValue().Get()
	assert.False(t, ok)

	known := ir.NewLoopVarRef("$i", util.Some(uint(2)))
	v, ok := known.ConstantValue().Get()
	assert.True(t, ok)
	assert.Equal(t, uint(2), v)
}
