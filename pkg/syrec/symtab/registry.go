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
package symtab

import "github.com/syrec-lang/syrec/pkg/syrec/ir"

// Registry is the global module registry: identifier -> ordered list of
// Module overloads. It is a pure lookup/insert structure with no notion of
// scope — modules are declared once, at the top level, for the whole
// program.
type Registry struct {
	overloads map[string][]*ir.Module
}

// NewRegistry constructs an empty module registry.
func NewRegistry() *Registry {
	return &Registry{overloads: make(map[string][]*ir.Module)}
}

// assignable is the §4.2 caller-kind -> parameter-kind assignability
// table. Row = caller argument's kind, column = parameter's kind.
var assignable = map[ir.VariableKind]map[ir.VariableKind]bool{
	ir.Input:  {ir.Input: true, ir.Output: false, ir.Inout: false},
	ir.Output: {ir.Input: true, ir.Output: true, ir.Inout: true},
	ir.Inout:  {ir.Input: true, ir.Output: true, ir.Inout: true},
	ir.Wire:   {ir.Input: true, ir.Output: true, ir.Inout: true},
	ir.State:  {ir.Input: false, ir.Output: false, ir.Inout: false},
}

// Assignable reports whether a caller argument of kind callerKind may be
// passed to a parameter of kind paramKind.
func Assignable(callerKind, paramKind ir.VariableKind) bool {
	row, ok := assignable[callerKind]
	if !ok {
		return false
	}

	return row[paramKind]
}

// typeAmbiguous is the §4.2 type-ambiguity table: two parameter kinds are
// ambiguous (cannot be used to disambiguate an overload at a given
// position) iff they accept exactly the same set of caller kinds.
var typeAmbiguous = map[ir.VariableKind]map[ir.VariableKind]bool{
	ir.Input:  {ir.Input: true},
	ir.Output: {ir.Output: true, ir.Inout: true},
	ir.Inout:  {ir.Output: true, ir.Inout: true},
}

// kindsAmbiguous reports whether a and b are ambiguous parameter kinds per
// the §4.2 type-ambiguity table.
func kindsAmbiguous(a, b ir.VariableKind) bool {
	if row, ok := typeAmbiguous[a]; ok && row[b] {
		return true
	}

	return a == b
}

// signaturesAmbiguous reports whether two candidate modules have an
// identical, undistinguishable signature: same identifier, same parameter
// count, and for every position a type-ambiguous kind pair plus identical
// dimensions and bit-width.
func signaturesAmbiguous(a, b *ir.Module) bool {
	if a.Identifier != b.Identifier || len(a.Parameters) != len(b.Parameters) {
		return false
	}

	for i, pa := range a.Parameters {
		pb := b.Parameters[i]

		if !kindsAmbiguous(pa.Kind, pb.Kind) {
			return false
		}

		if !sameShape(pa, pb) {
			return false
		}
	}

	return true
}

func sameShape(a, b *ir.Variable) bool {
	if a.Bitwidth != b.Bitwidth || len(a.Dimensions) != len(b.Dimensions) {
		return false
	}

	for i := range a.Dimensions {
		if a.Dimensions[i] != b.Dimensions[i] {
			return false
		}
	}

	return true
}

// InsertModule registers module. Returns false (and does not register) if
// identifier is empty or a signature-ambiguous overload is already present.
func (r *Registry) InsertModule(module *ir.Module) bool {
	if module == nil || module.Identifier == "" {
		return false
	}

	for _, existing := range r.overloads[module.Identifier] {
		if signaturesAmbiguous(existing, module) {
			return false
		}
	}

	r.overloads[module.Identifier] = append(r.overloads[module.Identifier], module)

	return true
}

// Overloads returns every module registered under identifier, in insertion
// order.
func (r *Registry) Overloads(identifier string) []*ir.Module {
	return r.overloads[identifier]
}

// ResolveOutcome is the cardinality result of ResolveCall.
type ResolveOutcome uint8

const (
	NoMatchFound ResolveOutcome = iota
	SingleMatchFound
	MultipleMatchesFound
	CallerArgumentsInvalid
)

// ResolveCall finds the overload of identifier whose parameter list is
// assignable from callerArguments, per §4.2. A nil entry anywhere in
// callerArguments (an unresolved caller-argument identifier) immediately
// yields CallerArgumentsInvalid.
func (r *Registry) ResolveCall(identifier string, callerArguments []*ir.Variable) (ResolveOutcome, *ir.Module) {
	for _, arg := range callerArguments {
		if arg == nil {
			return CallerArgumentsInvalid, nil
		}
	}

	var matches []*ir.Module

	for _, candidate := range r.overloads[identifier] {
		if len(candidate.Parameters) != len(callerArguments) {
			continue
		}

		if candidateMatches(candidate, callerArguments) {
			matches = append(matches, candidate)
		}
	}

	switch len(matches) {
	case 0:
		return NoMatchFound, nil
	case 1:
		return SingleMatchFound, matches[0]
	default:
		return MultipleMatchesFound, nil
	}
}

func candidateMatches(candidate *ir.Module, callerArguments []*ir.Variable) bool {
	for i, param := range candidate.Parameters {
		arg := callerArguments[i]

		if !Assignable(arg.Kind, param.Kind) {
			return false
		}

		if !sameShape(arg, param) {
			return false
		}
	}

	return true
}
