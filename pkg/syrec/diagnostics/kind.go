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
package diagnostics

// Kind identifies a specific diagnostic. Each Kind has a fixed Category and
// Severity (see kindInfo below); callers never pick severity independently
// of kind.
type Kind uint8

const (
	// Category: identifier & scope resolution.

	NoVariableMatchingIdentifier Kind = iota
	DuplicateVariableDeclaration
	DuplicateModuleSignature
	UnknownModule
	NoMatchingOverload
	AmbiguousOverload

	// Category: type & shape checking.

	BitWidthMismatch
	UndecidableBitWidth
	DimensionCountMismatch
	IndexOutOfRange
	BitIndexOutOfRange
	AssignmentToReadonlyVariable

	// Category: arithmetic.

	DivisionByZero
	IntegerConstantOverflow

	// Category: control flow.

	IfGuardExpressionMismatch
	NegativeStepNotAllowed
	LoopVariableSelfReference

	// Category: aliasing.

	SelfAssignmentOverlap
)

// Category groups related Kinds, mirroring the five-way split of the error
// taxonomy. Render does not group by it; rows follow recording order.
type Category uint8

const (
	IdentifierScope Category = iota
	TypeAndShape
	Arithmetic
	ControlFlow
	Aliasing
)

func (c Category) String() string {
	switch c {
	case IdentifierScope:
		return "identifier-scope"
	case TypeAndShape:
		return "type-and-shape"
	case Arithmetic:
		return "arithmetic"
	case ControlFlow:
		return "control-flow"
	case Aliasing:
		return "aliasing"
	default:
		return "unknown"
	}
}

type kindInfo struct {
	code     string
	category Category
	severity Severity
}

// table is indexed by Kind and fixes each kind's machine-readable code,
// category and severity. A kind whose defect is always fatal to the
// surrounding module (e.g. an unresolved identifier) carries Error; one
// that is informational only would carry Warning, though spec.md's current
// taxonomy has no such kind yet.
var table = [...]kindInfo{
	NoVariableMatchingIdentifier: {"E0101", IdentifierScope, Error},
	DuplicateVariableDeclaration: {"E0102", IdentifierScope, Error},
	DuplicateModuleSignature:     {"E0103", IdentifierScope, Error},
	UnknownModule:                {"E0104", IdentifierScope, Error},
	NoMatchingOverload:           {"E0105", IdentifierScope, Error},
	AmbiguousOverload:            {"E0106", IdentifierScope, Error},

	BitWidthMismatch:             {"E0201", TypeAndShape, Error},
	UndecidableBitWidth:          {"E0202", TypeAndShape, Error},
	DimensionCountMismatch:       {"E0203", TypeAndShape, Error},
	IndexOutOfRange:              {"E0204", TypeAndShape, Error},
	BitIndexOutOfRange:           {"E0205", TypeAndShape, Error},
	AssignmentToReadonlyVariable: {"E0206", TypeAndShape, Error},

	DivisionByZero:          {"E0301", Arithmetic, Error},
	IntegerConstantOverflow: {"E0302", Arithmetic, Error},

	IfGuardExpressionMismatch: {"E0401", ControlFlow, Error},
	NegativeStepNotAllowed:    {"E0402", ControlFlow, Error},
	LoopVariableSelfReference: {"E0403", ControlFlow, Error},

	SelfAssignmentOverlap: {"E0501", Aliasing, Error},
}

// Code returns this kind's stable machine-readable code, e.g. "E0301" for
// DivisionByZero.
func (k Kind) Code() string { return table[k].code }

// Category returns the category this kind belongs to.
func (k Kind) Category() Category { return table[k].category }

// Severity returns the fixed severity of this kind.
func (k Kind) Severity() Severity { return table[k].severity }
