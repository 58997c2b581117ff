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

// Package symtab implements the two independent stores the semantic
// analyzer consults while building the IR: a global module registry
// (identifier -> overload list, with resolveCall) and a stack of temporary
// scopes used to resolve ordinary signal and loop-variable identifiers.
package symtab

import (
	"strings"

	"github.com/syrec-lang/syrec/pkg/syrec/ir"
	"github.com/syrec-lang/syrec/pkg/util"
	"github.com/syrec-lang/syrec/pkg/util/collection/stack"
)

// LoopVarSigil prefixes every loop-variable identifier in both the
// concrete syntax and the symbol table's lookup keys.
const LoopVarSigil = "$"

// entryKind distinguishes the two things a scope can bind an identifier to.
type entryKind uint8

const (
	entrySignal entryKind = iota
	entryLoopVar
)

// entry is one scope slot: a signal binding, or a loop-variable binding
// together with its currently-known value (if any), consulted by the
// expression visitor while folding constants inside the for-body.
type entry struct {
	kind     entryKind
	variable *ir.Variable      // set when kind == entrySignal
	known    util.Option[uint] // set when kind == entryLoopVar
}

// Scope is one temporary scope: a flat map from identifier to entry. Signal
// identifiers and loop-variable identifiers (which always carry the
// LoopVarSigil prefix) share one map — the sigil already makes the two
// namespaces disjoint by literal key, so insertion naturally keeps them
// separate while a single lookup serves both.
type Scope struct {
	entries map[string]entry
}

func newScope() *Scope {
	return &Scope{entries: make(map[string]entry)}
}

// InsertSignal binds identifier to variable in this scope. Fails (returns
// false) if identifier is empty or already bound in this scope.
func (s *Scope) InsertSignal(identifier string, variable *ir.Variable) bool {
	if identifier == "" {
		return false
	}

	if _, exists := s.entries[identifier]; exists {
		return false
	}

	s.entries[identifier] = entry{kind: entrySignal, variable: variable}

	return true
}

// InsertLoopVar binds a loop-variable identifier (including its leading
// sigil) to an optional known value. Fails if identifier is empty, doesn't
// begin with LoopVarSigil, or is already bound in this scope.
func (s *Scope) InsertLoopVar(identifier string, known util.Option[uint]) bool {
	if identifier == "" || !strings.HasPrefix(identifier, LoopVarSigil) {
		return false
	}

	if _, exists := s.entries[identifier]; exists {
		return false
	}

	s.entries[identifier] = entry{kind: entryLoopVar, known: known}

	return true
}

// lookup finds identifier in this scope only (no parent traversal).
func (s *Scope) lookup(identifier string) (entry, bool) {
	e, ok := s.entries[identifier]
	return e, ok
}

// Snapshot returns a shallow copy of this scope's loop-variable value
// table, keyed by identifier.
func (s *Scope) Snapshot() map[string]util.Option[uint] {
	out := make(map[string]util.Option[uint], len(s.entries))

	for id, e := range s.entries {
		if e.kind == entryLoopVar {
			out[id] = e.known
		}
	}

	return out
}

// Stack is the analyzer's stack of temporary scopes: one pushed on module
// entry and on every for-statement entry, popped on the symmetric exit.
type Stack struct {
	scopes *stack.Stack[*Scope]
}

// NewStack constructs an empty scope stack.
func NewStack() *Stack {
	return &Stack{scopes: stack.NewStack[*Scope]()}
}

// Push opens a new, empty scope.
func (s *Stack) Push() {
	s.scopes.Push(newScope())
}

// Pop closes the topmost scope.
func (s *Stack) Pop() {
	s.scopes.Pop()
}

// ActiveScope returns the topmost scope, or nil if the stack is empty, per
// spec.md's getActiveScope() contract.
func (s *Stack) ActiveScope() *Scope {
	top, ok := s.scopes.Top()
	if !ok {
		return nil
	}

	return top
}

// LookupSignal searches every scope, topmost first, for a signal binding of
// identifier.
func (s *Stack) LookupSignal(identifier string) (*ir.Variable, bool) {
	for _, scope := range s.scopes.TopDown() {
		if e, ok := scope.lookup(identifier); ok && e.kind == entrySignal {
			return e.variable, true
		}
	}

	return nil, false
}

// LookupLoopVar searches every scope, topmost first, for a loop-variable
// binding of identifier (identifier must already include the sigil).
func (s *Stack) LookupLoopVar(identifier string) (util.Option[uint], bool) {
	for _, scope := range s.scopes.TopDown() {
		if e, ok := scope.lookup(identifier); ok && e.kind == entryLoopVar {
			return e.known, true
		}
	}

	return util.None[uint](), false
}
