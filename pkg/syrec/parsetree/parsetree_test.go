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
package parsetree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syrec-lang/syrec/pkg/syrec/parsetree"
	"github.com/syrec-lang/syrec/pkg/util/source"
)

func TestHandBuiltModuleTree(t *testing.T) {
	pos := source.NewPosition(1, 1)

	module := &parsetree.Module{
		Pos:        pos,
		Identifier: "main",
		Parameters: []*parsetree.Param{
			{Pos: pos, Kind: parsetree.ParamIn, Identifier: "a", Dimensions: nil, Bitwidth: &parsetree.IntLiteral{Pos: pos, Value: 8}},
		},
		Statements: []parsetree.StatementNode{
			&parsetree.SkipNode{Pos: pos},
		},
	}

	assert.Equal(t, "main", module.Identifier)
	assert.Equal(t, pos, module.Position())
	assert.Len(t, module.Parameters, 1)
	assert.Len(t, module.Statements, 1)

	_, isSkip := module.Statements[0].(*parsetree.SkipNode)
	assert.True(t, isSkip)
}

func TestVariableAccessWithBitRange(t *testing.T) {
	pos := source.NewPosition(2, 3)
	access := &parsetree.VariableAccess{
		Pos:        pos,
		Identifier: "v",
		Range: &parsetree.BitRange{
			Start: &parsetree.IntLiteral{Pos: pos, Value: 3},
			End:   &parsetree.IntLiteral{Pos: pos, Value: 7},
		},
	}

	assert.Equal(t, "v", access.Identifier)
	assert.NotNil(t, access.Range)
}
