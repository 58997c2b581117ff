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

// Package analyzer implements the semantic analysis pass: it walks a
// parsetree.Program and produces an ir.Program plus a diagnostics.Bag. No
// sub-visitor ever panics on malformed input; a failed sub-visit records a
// diagnostic and returns a zero result up the call chain, so one bad
// statement never stops the rest of the program from being checked.
package analyzer

import (
	log "github.com/sirupsen/logrus"

	"github.com/syrec-lang/syrec/pkg/syrec/diagnostics"
	"github.com/syrec-lang/syrec/pkg/syrec/ir"
	"github.com/syrec-lang/syrec/pkg/syrec/parsetree"
	"github.com/syrec-lang/syrec/pkg/syrec/symtab"
	"github.com/syrec-lang/syrec/pkg/util"
)

// Settings carries the two knobs spec.md leaves to the caller: the
// bit-width applied to a declaration that omits "(bw)", and the truncation
// mode applied to an oversized constant.
type Settings struct {
	DefaultBitwidth       uint
	IntegerTruncationMode ir.TruncationMode
}

// DefaultSettings returns the settings the CLI falls back to when the user
// supplies neither flag.
func DefaultSettings() Settings {
	return Settings{DefaultBitwidth: 32, IntegerTruncationMode: ir.TruncateModulo}
}

// Analyzer holds the mutable state threaded through one analysis run: the
// module registry, the scope stack, the diagnostic sink, and the handful of
// ambient restrictions (self-assignment overlap, loop-variable
// self-reference) the expression visitor consults.
type Analyzer struct {
	settings Settings
	registry *symtab.Registry
	scopes   *symtab.Stack
	diags    *diagnostics.Bag

	forbiddenAccess  util.Option[*ir.VariableAccess]
	forbiddenLoopVar util.Option[string]
}

// New constructs an Analyzer ready to analyze one Program.
func New(settings Settings) *Analyzer {
	return &Analyzer{
		settings: settings,
		registry: symtab.NewRegistry(),
		scopes:   symtab.NewStack(),
		diags:    diagnostics.NewBag(),
	}
}

// Diagnostics returns every diagnostic recorded during AnalyzeProgram.
func (a *Analyzer) Diagnostics() *diagnostics.Bag { return a.diags }

// AnalyzeProgram builds an ir.Program from tree. Modules are registered in
// two passes: first every module's signature (parameters and locals), so
// that a Call/Uncall statement can resolve a module declared later in the
// same program (including a module calling itself); then every module's
// statement body, which may reference any registered signature.
func (a *Analyzer) AnalyzeProgram(tree *parsetree.Program) *ir.Program {
	log.Infof("analyzing program with %d module declaration(s)", len(tree.Modules))

	modules := make([]*ir.Module, len(tree.Modules))

	for i, m := range tree.Modules {
		mod := a.buildModuleSignature(m)
		modules[i] = mod

		if mod == nil {
			continue
		}

		if !a.registry.InsertModule(mod) {
			a.diags.Add(diagnostics.New(diagnostics.DuplicateModuleSignature, m.Position(),
				"module %q has the same signature as an existing overload", m.Identifier))
		}
	}

	log.Debugf("registered signatures for pass 1, building %d module bodies", len(modules))

	for i, m := range tree.Modules {
		if modules[i] == nil {
			continue
		}

		a.buildModuleBody(m, modules[i])
	}

	out := make([]*ir.Module, 0, len(modules))
	for _, mod := range modules {
		if mod != nil {
			out = append(out, mod)
		}
	}

	log.WithFields(log.Fields{
		"modules":     len(out),
		"diagnostics": a.diags.Len(),
		"hasErrors":   a.diags.HasErrors(),
	}).Info("analysis complete")

	return ir.NewProgram(out)
}
