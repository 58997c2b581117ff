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

import "github.com/syrec-lang/syrec/pkg/util"

// BitRange is a VariableAccess's optional ".start:end" suffix. A single-bit
// access ".b" is represented with Start and End equal.
type BitRange struct {
	Start, End Number
}

// VariableAccess references some sub-region of a declared Variable: zero or
// more per-dimension index expressions, plus an optional bit range. Index
// expressions are full Expressions (the grammar allows arbitrary
// expressions in brackets); bit-range endpoints are Numbers. It is shared
// by the surrounding expression or statement, never copied.
type VariableAccess struct {
	Variable *Variable
	Indices  []Expression
	Range    util.Option[BitRange]
}

// NewVariableAccess constructs an access to variable, indexed by indices
// (one index expression per addressed dimension; may be shorter than
// variable's dimension count per spec, denoting the remaining dimensions in
// full), and an optional bit range.
func NewVariableAccess(variable *Variable, indices []Expression, bitRange util.Option[BitRange]) *VariableAccess {
	return &VariableAccess{Variable: variable, Indices: indices, Range: bitRange}
}

// Bitwidth returns the number of bits denoted by this access: the full
// variable bit-width when no range is given, or |end-start|+1 when both
// range endpoints are known. The analyzer's expression visitor records an
// UndecidableBitWidth diagnostic for the undecidable case (differing
// unresolved loop variables on each endpoint) and still constructs the
// access; Bitwidth itself just reports what it can compute and
// falls back to the full variable width if the range is present but
// unevaluable, to stay a total function.
func (a *VariableAccess) Bitwidth() uint {
	br, ok := a.Range.Get()
	if !ok {
		return a.Variable.Bitwidth
	}

	start, startOk := br.Start.ConstantValue().Get()
	end, endOk := br.End.ConstantValue().Get()

	if !startOk || !endOk {
		return a.Variable.Bitwidth
	}

	if end >= start {
		return end - start + 1
	}

	return start - end + 1
}
