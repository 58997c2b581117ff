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
package printer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syrec-lang/syrec/pkg/syrec/ir"
	"github.com/syrec-lang/syrec/pkg/syrec/printer"
	"github.com/syrec-lang/syrec/pkg/util"
)

func noRange() util.Option[ir.BitRange] {
	return util.None[ir.BitRange]()
}

func TestPrintRendersModuleHeaderAndAssign(t *testing.T) {
	a := ir.NewVariable(ir.Output, "a", []uint{1}, 4)
	target := ir.NewVariableAccess(a, nil, noRange())
	rhs := ir.NewNumeric(ir.NewConstantInt(1), 4)
	module := ir.NewModule("m", []*ir.Variable{a}, nil, []ir.Statement{
		&ir.Assign{Target: target, Op: ir.AssignAdd, Rhs: rhs},
	})
	program := ir.NewProgram([]*ir.Module{module})

	var out strings.Builder
	require.NoError(t, printer.New().Print(&out, program))

	text := out.String()
	assert.Contains(t, text, "module m(out a(4))")
	assert.Contains(t, text, "a += 1")
}

func TestPrintRendersSwapAndSkip(t *testing.T) {
	a := ir.NewVariable(ir.Output, "a", []uint{1}, 4)
	b := ir.NewVariable(ir.Output, "b", []uint{1}, 4)
	module := ir.NewModule("m", []*ir.Variable{a, b}, nil, []ir.Statement{
		&ir.Swap{Lhs: ir.NewVariableAccess(a, nil, noRange()), Rhs: ir.NewVariableAccess(b, nil, noRange())},
		&ir.Skip{},
	})
	program := ir.NewProgram([]*ir.Module{module})

	var out strings.Builder
	require.NoError(t, printer.New().Print(&out, program))

	text := out.String()
	assert.Contains(t, text, "a <=> b")
	assert.Contains(t, text, "skip")
}

func TestPrintRendersMultipleModulesSeparately(t *testing.T) {
	a := ir.NewVariable(ir.Output, "a", []uint{1}, 4)
	m1 := ir.NewModule("one", []*ir.Variable{a}, nil, []ir.Statement{&ir.Skip{}})
	m2 := ir.NewModule("two", []*ir.Variable{a}, nil, []ir.Statement{&ir.Skip{}})
	program := ir.NewProgram([]*ir.Module{m1, m2})

	var out strings.Builder
	require.NoError(t, printer.New().Print(&out, program))

	text := out.String()
	assert.Contains(t, text, "module one(")
	assert.Contains(t, text, "module two(")
}
