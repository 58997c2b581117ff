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
)

// buildModuleSignature builds a module's parameter and local variable
// lists (but not its statement body — see buildModuleBody) and checks
// identifier uniqueness across both lists. Returns nil if the module
// identifier is empty.
func (a *Analyzer) buildModuleSignature(m *parsetree.Module) *ir.Module {
	if m.Identifier == "" {
		a.diags.Add(diagnostics.New(diagnostics.DuplicateVariableDeclaration, m.Position(), "module declared with an empty identifier"))
		return nil
	}

	seen := make(map[string]bool)

	parameters := make([]*ir.Variable, 0, len(m.Parameters))
	for _, p := range m.Parameters {
		v := a.buildParam(p)
		if v == nil {
			continue
		}

		if seen[v.Identifier] {
			a.diags.Add(diagnostics.New(diagnostics.DuplicateVariableDeclaration, p.Position(),
				"duplicate declaration of %q in module %q", v.Identifier, m.Identifier))
			continue
		}

		seen[v.Identifier] = true
		parameters = append(parameters, v)
	}

	locals := make([]*ir.Variable, 0, len(m.Locals))
	for _, group := range m.Locals {
		for _, v := range a.buildLocalGroup(group) {
			if seen[v.Identifier] {
				a.diags.Add(diagnostics.New(diagnostics.DuplicateVariableDeclaration, group.Position(),
					"duplicate declaration of %q in module %q", v.Identifier, m.Identifier))
				continue
			}

			seen[v.Identifier] = true
			locals = append(locals, v)
		}
	}

	log.WithFields(log.Fields{
		"module":     m.Identifier,
		"parameters": len(parameters),
		"locals":     len(locals),
	}).Debug("resolved module signature")

	return ir.NewModule(m.Identifier, parameters, locals, nil)
}

func (a *Analyzer) buildParam(p *parsetree.Param) *ir.Variable {
	if p.Identifier == "" {
		a.diags.Add(diagnostics.New(diagnostics.DuplicateVariableDeclaration, p.Position(), "parameter declared with an empty identifier"))
		return nil
	}

	kind := ir.Input
	switch p.Kind {
	case parsetree.ParamOut:
		kind = ir.Output
	case parsetree.ParamInout:
		kind = ir.Inout
	}

	dims := a.buildStaticDimensions(p.Dimensions)
	bitwidth := a.buildStaticBitwidth(p.Bitwidth)

	return ir.NewVariable(kind, p.Identifier, dims, bitwidth)
}

func (a *Analyzer) buildLocalGroup(g *parsetree.LocalVarGroup) []*ir.Variable {
	kind := ir.Wire
	if g.Kind == parsetree.VarGroupState {
		kind = ir.State
	}

	dims := a.buildStaticDimensions(g.Dimensions)
	bitwidth := a.buildStaticBitwidth(g.Bitwidth)

	out := make([]*ir.Variable, 0, len(g.Identifiers))
	for _, identifier := range g.Identifiers {
		if identifier == "" {
			a.diags.Add(diagnostics.New(diagnostics.DuplicateVariableDeclaration, g.Position(), "local variable declared with an empty identifier"))
			continue
		}

		out = append(out, ir.NewVariable(kind, identifier, dims, bitwidth))
	}

	return out
}

// buildStaticDimensions resolves a declaration's dimension list. Each entry
// is expected to fold to a known constant at declaration time (no loop
// variable is in scope yet); an extent that fails to fold is recorded as
// dimension 1 so the rest of analysis can proceed on a well-shaped variable.
func (a *Analyzer) buildStaticDimensions(nodes []parsetree.NumberNode) []uint {
	if len(nodes) == 0 {
		return []uint{1}
	}

	out := make([]uint, len(nodes))
	for i, n := range nodes {
		num := a.buildNumber(n)
		v, ok := num.ConstantValue().Get()
		if !ok || v == 0 {
			v = 1
		}

		out[i] = v
	}

	return out
}

func (a *Analyzer) buildStaticBitwidth(node parsetree.NumberNode) uint {
	if node == nil {
		return a.settings.DefaultBitwidth
	}

	num := a.buildNumber(node)
	v, ok := num.ConstantValue().Get()
	if !ok {
		return a.settings.DefaultBitwidth
	}

	if v > ir.MaxSupportedBitwidth {
		a.diags.Add(diagnostics.New(diagnostics.IntegerConstantOverflow, node.Position(),
			"declared bit-width %d exceeds the supported maximum of %d", v, ir.MaxSupportedBitwidth))
		return ir.MaxSupportedBitwidth
	}

	return v
}

// buildModuleBody resolves mod's statement list against its already-built
// parameter/local scope. Pushed before, popped after — the same discipline
// every nested for-body follows.
func (a *Analyzer) buildModuleBody(m *parsetree.Module, mod *ir.Module) {
	log.Debugf("building body of module %q (%d statements)", mod.Identifier, len(m.Statements))

	a.scopes.Push()
	defer a.scopes.Pop()

	for _, v := range mod.Parameters {
		a.scopes.ActiveScope().InsertSignal(v.Identifier, v)
	}

	for _, v := range mod.Locals {
		a.scopes.ActiveScope().InsertSignal(v.Identifier, v)
	}

	mod.Statements = a.buildStatements(m.Statements)
}
