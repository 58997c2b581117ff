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

// Package validate implements two pure validators for variable accesses:
// per-access index-range validation (index.go) and two-access overlap
// classification (overlap.go). The analyzer consults only the overlap
// classification while building variable accesses; it does not call
// ValidateAccess.
package validate

import "github.com/syrec-lang/syrec/pkg/syrec/ir"

// IndexClass classifies a single dimension index or bit-range endpoint.
type IndexClass uint8

const (
	Ok IndexClass = iota
	OutOfRange
	Unknown
)

// DimensionResult is the classification of one accessed dimension.
type DimensionResult struct {
	Class IndexClass
	// Value is set only when a constant index was syntactically present,
	// whether or not it turned out in-range.
	Value    uint
	HasValue bool
}

// BitRangeResult is the classification of an access's optional bit range.
type BitRangeResult struct {
	Present    bool
	Start, End DimensionResult
}

// AccessResult is the full per-dimension and bit-range classification of a
// VariableAccess.
type AccessResult struct {
	Dimensions []DimensionResult
	Range      BitRangeResult
}

// IsValid reports whether every dimension result and (if present) both bit
// range endpoints classified Ok.
func (r AccessResult) IsValid() bool {
	for _, d := range r.Dimensions {
		if d.Class != Ok {
			return false
		}
	}

	if r.Range.Present {
		return r.Range.Start.Class == Ok && r.Range.End.Class == Ok
	}

	return true
}

// ValidateAccess classifies every dimension index and the optional bit
// range of access against its variable's declared shape, per §4.5.
func ValidateAccess(access *ir.VariableAccess) AccessResult {
	variable := access.Variable
	result := AccessResult{Dimensions: make([]DimensionResult, len(access.Indices))}

	for i, idx := range access.Indices {
		if i >= len(variable.Dimensions) {
			result.Dimensions[i] = DimensionResult{Class: Unknown}
			continue
		}

		result.Dimensions[i] = classifyDimension(idx, variable.Dimensions[i])
	}

	if br, present := access.Range.Get(); present {
		result.Range = BitRangeResult{
			Present: true,
			Start:   classifyBitEndpoint(br.Start, variable.Bitwidth),
			End:     classifyBitEndpoint(br.End, variable.Bitwidth),
		}
	}

	return result
}

func classifyDimension(idx ir.Expression, extent uint) DimensionResult {
	v32, known := ir.AsConstant(idx)
	if !known {
		return DimensionResult{Class: Unknown}
	}

	v := uint(v32)
	if v < extent {
		return DimensionResult{Class: Ok, Value: v, HasValue: true}
	}

	return DimensionResult{Class: OutOfRange, Value: v, HasValue: true}
}

func classifyBitEndpoint(endpoint ir.Number, bitwidth uint) DimensionResult {
	v, known := endpoint.ConstantValue().Get()
	if !known {
		return DimensionResult{Class: Unknown}
	}

	if bitwidth == 0 || v > bitwidth-1 {
		return DimensionResult{Class: OutOfRange, Value: v, HasValue: true}
	}

	return DimensionResult{Class: Ok, Value: v, HasValue: true}
}
