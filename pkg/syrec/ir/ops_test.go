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
)

func TestBinaryOpEval(t *testing.T) {
	v, ok := ir.Add.Eval(3, 5)
	assert.True(t, ok)
	assert.Equal(t, uint32(8), v)

	_, ok = ir.Divide.Eval(3, 0)
	assert.False(t, ok)

	v, ok = ir.Modulo.Eval(17, 15)
	assert.True(t, ok)
	assert.Equal(t, uint32(2), v)
}

func TestBinaryOpRelationalAndIdentity(t *testing.T) {
	assert.True(t, ir.Equals.IsRelational())
	assert.False(t, ir.Add.IsRelational())

	lhs, ok := ir.Add.LhsIdentity().Get()
	assert.False(t, ok)
	_ = lhs

	rhs, ok := ir.Add.RhsIdentity().Get()
	assert.True(t, ok)
	assert.Equal(t, uint32(0), rhs)
}

func TestShiftEval(t *testing.T) {
	assert.Equal(t, uint32(0), ir.ShiftLeft.Eval(0, 5))
	assert.Equal(t, uint32(4), ir.ShiftLeft.Eval(4, 0))
	assert.Equal(t, uint32(8), ir.ShiftLeft.Eval(4, 1))
	assert.Equal(t, uint32(2), ir.ShiftRight.Eval(4, 1))
}

func TestTruncateModes(t *testing.T) {
	// w >= 32: unchanged.
	assert.Equal(t, uint32(123456), ir.Truncate(123456, 32, ir.TruncateModulo))

	// value already fits: unchanged.
	assert.Equal(t, uint32(2), ir.Truncate(2, 4, ir.TruncateModulo))

	// 17 at width 4: limit = 2^4-1 = 15, 17 % 15 = 2.
	assert.Equal(t, uint32(2), ir.Truncate(17, 4, ir.TruncateModulo))

	// same value, BitwiseAnd mode: 17 & 15 = 1.
	assert.Equal(t, uint32(1), ir.Truncate(17, 4, ir.TruncateBitwiseAnd))

	// w == 0: always 0.
	assert.Equal(t, uint32(0), ir.Truncate(42, 0, ir.TruncateModulo))
}
