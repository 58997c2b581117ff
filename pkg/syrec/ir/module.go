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
package ir

// Module is one SyReC unit of reversible computation: a named, ordered
// parameter list, an ordered local-variable list, and an ordered statement
// body. Modules sharing an Identifier are overloads of one another (see
// pkg/syrec/symtab); a Module is otherwise an immutable value once
// registered.
type Module struct {
	Identifier string
	Parameters []*Variable
	Locals     []*Variable
	Statements []Statement
}

// NewModule constructs a Module. Uniqueness of parameter/local identifiers
// is checked by the module visitor at construction time (it needs a
// diagnostic sink to report against), not by this constructor. Neither
// checks that Statements is non-empty; a module with no statements is
// accepted.
func NewModule(identifier string, parameters, locals []*Variable, statements []Statement) *Module {
	return &Module{
		Identifier: identifier,
		Parameters: parameters,
		Locals:     locals,
		Statements: statements,
	}
}

// FindLocal looks up a declared variable (parameter or local) by
// identifier, searching parameters before locals so a caller doesn't need
// to know which group a name came from when resolving identifiers.
func (m *Module) FindLocal(identifier string) *Variable {
	for _, p := range m.Parameters {
		if p.Identifier == identifier {
			return p
		}
	}

	for _, l := range m.Locals {
		if l.Identifier == identifier {
			return l
		}
	}

	return nil
}
