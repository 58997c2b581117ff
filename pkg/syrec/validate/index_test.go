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
package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syrec-lang/syrec/pkg/syrec/ir"
	"github.com/syrec-lang/syrec/pkg/syrec/validate"
	"github.com/syrec-lang/syrec/pkg/util"
)

func idx(v uint) ir.Expression {
	return ir.NewNumeric(ir.NewConstantInt(v), 32)
}

func TestValidateAccessAllOkWithinBounds(t *testing.T) {
	v := ir.NewVariable(ir.Wire, "a", []uint{4}, 16)
	access := ir.NewVariableAccess(v, []ir.Expression{idx(2)},
		util.Some(ir.BitRange{Start: ir.NewConstantInt(2), End: ir.NewConstantInt(5)}))

	result := validate.ValidateAccess(access)
	assert.True(t, result.IsValid())
}

func TestValidateAccessDimensionOutOfRange(t *testing.T) {
	v := ir.NewVariable(ir.Wire, "a", []uint{4}, 16)
	access := ir.NewVariableAccess(v, []ir.Expression{idx(9)}, util.None[ir.BitRange]())

	result := validate.ValidateAccess(access)
	assert.False(t, result.IsValid())
	assert.Equal(t, validate.OutOfRange, result.Dimensions[0].Class)
}

func TestValidateAccessBitRangeOutOfRange(t *testing.T) {
	v := ir.NewVariable(ir.Wire, "a", []uint{1}, 8)
	access := ir.NewVariableAccess(v, nil,
		util.Some(ir.BitRange{Start: ir.NewConstantInt(0), End: ir.NewConstantInt(9)}))

	result := validate.ValidateAccess(access)
	assert.False(t, result.IsValid())
	assert.Equal(t, validate.OutOfRange, result.Range.End.Class)
}

func TestValidateAccessUnknownIndexIsNeitherOkNorOutOfRange(t *testing.T) {
	v := ir.NewVariable(ir.Wire, "a", []uint{4}, 16)
	loopVar := ir.NewNumeric(ir.NewLoopVarRef("$i", util.None[uint]()), 32)
	access := ir.NewVariableAccess(v, []ir.Expression{loopVar}, util.None[ir.BitRange]())

	result := validate.ValidateAccess(access)
	assert.False(t, result.IsValid())
	assert.Equal(t, validate.Unknown, result.Dimensions[0].Class)
}

func TestValidateAccessExcessDimensionIsUnknown(t *testing.T) {
	v := ir.NewVariable(ir.Wire, "a", []uint{1}, 16)
	access := ir.NewVariableAccess(v, []ir.Expression{idx(0), idx(0)}, util.None[ir.BitRange]())

	result := validate.ValidateAccess(access)
	assert.Equal(t, validate.Unknown, result.Dimensions[1].Class)
}

func TestValidateAccessSoundness(t *testing.T) {
	// Testable property: every Ok classification denotes a region
	// strictly inside the declared bounds.
	v := ir.NewVariable(ir.Wire, "a", []uint{4}, 16)
	access := ir.NewVariableAccess(v, []ir.Expression{idx(3)},
		util.Some(ir.BitRange{Start: ir.NewConstantInt(1), End: ir.NewConstantInt(4)}))

	result := validate.ValidateAccess(access)
	assert.True(t, result.IsValid())

	for i, d := range result.Dimensions {
		assert.True(t, d.Value < v.Dimensions[i])
	}

	assert.True(t, result.Range.Start.Value <= v.Bitwidth-1)
	assert.True(t, result.Range.End.Value <= v.Bitwidth-1)
}
