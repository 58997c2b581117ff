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
package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syrec-lang/syrec/pkg/syrec/ir"
	"github.com/syrec-lang/syrec/pkg/syrec/symtab"
)

func moduleM() *ir.Module {
	return ir.NewModule("m", []*ir.Variable{
		ir.NewVariable(ir.Input, "a", []uint{2}, 16),
	}, nil, []ir.Statement{&ir.Skip{}})
}

func TestInsertModuleRejectsAmbiguousOverload(t *testing.T) {
	reg := symtab.NewRegistry()

	assert.True(t, reg.InsertModule(moduleM()))
	assert.False(t, reg.InsertModule(moduleM()))
	assert.Len(t, reg.Overloads("m"), 1)
}

func TestInsertModuleAllowsDistinguishableOverload(t *testing.T) {
	reg := symtab.NewRegistry()

	assert.True(t, reg.InsertModule(moduleM()))

	distinct := ir.NewModule("m", []*ir.Variable{
		ir.NewVariable(ir.Output, "a", []uint{2}, 16),
	}, nil, []ir.Statement{&ir.Skip{}})
	assert.True(t, reg.InsertModule(distinct))
	assert.Len(t, reg.Overloads("m"), 2)
}

func TestInsertModuleRejectsEmptyIdentifier(t *testing.T) {
	reg := symtab.NewRegistry()
	m := ir.NewModule("", nil, nil, []ir.Statement{&ir.Skip{}})

	assert.False(t, reg.InsertModule(m))
}

func TestResolveCallAssignability(t *testing.T) {
	reg := symtab.NewRegistry()
	reg.InsertModule(moduleM())

	// Input param accepts an Output-kind caller argument (Output row allows Input).
	callerArg := ir.NewVariable(ir.Output, "x", []uint{2}, 16)
	outcome, match := reg.ResolveCall("m", []*ir.Variable{callerArg})
	assert.Equal(t, symtab.SingleMatchFound, outcome)
	assert.NotNil(t, match)

	// State caller cannot be passed to an Input parameter.
	stateArg := ir.NewVariable(ir.State, "y", []uint{2}, 16)
	outcome, _ = reg.ResolveCall("m", []*ir.Variable{stateArg})
	assert.Equal(t, symtab.NoMatchFound, outcome)
}

func TestResolveCallArityMismatch(t *testing.T) {
	reg := symtab.NewRegistry()
	reg.InsertModule(moduleM())

	outcome, _ := reg.ResolveCall("m", nil)
	assert.Equal(t, symtab.NoMatchFound, outcome)
}

func TestResolveCallCallerArgumentsInvalid(t *testing.T) {
	reg := symtab.NewRegistry()
	reg.InsertModule(moduleM())

	outcome, _ := reg.ResolveCall("m", []*ir.Variable{nil})
	assert.Equal(t, symtab.CallerArgumentsInvalid, outcome)
}

func TestResolveCallUnknownModule(t *testing.T) {
	reg := symtab.NewRegistry()

	outcome, _ := reg.ResolveCall("nosuch", nil)
	assert.Equal(t, symtab.NoMatchFound, outcome)
}
