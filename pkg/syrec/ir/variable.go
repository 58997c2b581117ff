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

// Package ir defines the SyReC intermediate representation: the tagged-union
// data model (variables, numbers, accesses, expressions, statements,
// modules, programs) produced by the semantic analyzer. Every sum type from
// the data model is represented as a Go interface with one struct per
// variant, in the style of an AST package: a visitor is just a type switch
// over the interface, not a virtual dispatch hierarchy.
package ir

// MaxSupportedBitwidth is the largest bit-width a variable or expression may
// carry.
const MaxSupportedBitwidth = 32

// VariableKind classifies how a variable may be used: whether it is a
// caller-supplied argument, and if so in which direction, or purely local
// state.
type VariableKind uint8

const (
	// Input variables may be read but never written.
	Input VariableKind = iota
	// Output variables may be written; per SyReC's reversibility
	// requirement they are not expected to carry a meaningful initial
	// value.
	Output
	// Inout variables may be both read and written.
	Inout
	// Wire variables are module-local, non-parameter signals.
	Wire
	// State variables are module-local and persist meaning across
	// calls/uncalls but, like Input, may not be written directly.
	State
)

func (k VariableKind) String() string {
	switch k {
	case Input:
		return "in"
	case Output:
		return "out"
	case Inout:
		return "inout"
	case Wire:
		return "wire"
	case State:
		return "state"
	default:
		return "?"
	}
}

// Writable reports whether a variable of this kind may appear as an
// assignment or swap target. Input and State are read-only.
func (k VariableKind) Writable() bool {
	return k != Input && k != State
}

// Variable is a declared signal: a parameter or a local variable group
// entry. It is shared by reference between its declaring Module and every
// VariableAccess that names it, never copied.
type Variable struct {
	Kind       VariableKind
	Identifier string
	// Dimensions holds one extent per array dimension; a scalar ("atom")
	// signal is encoded as a single-element slice [1].
	Dimensions []uint
	Bitwidth   uint
}

// NewVariable constructs a Variable. Callers are expected to have already
// validated Identifier, Dimensions and Bitwidth against the invariants
// documented on Variable; NewVariable itself performs no validation since
// those checks require a diagnostic sink and a position to report against
// (see the analyzer's module visitor).
func NewVariable(kind VariableKind, identifier string, dimensions []uint, bitwidth uint) *Variable {
	return &Variable{
		Kind:       kind,
		Identifier: identifier,
		Dimensions: dimensions,
		Bitwidth:   bitwidth,
	}
}

// IsAtom reports whether this variable is a plain scalar signal, i.e. its
// only dimension has extent 1.
func (v *Variable) IsAtom() bool {
	return len(v.Dimensions) == 1 && v.Dimensions[0] == 1
}
