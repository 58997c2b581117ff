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
package validate

import "github.com/syrec-lang/syrec/pkg/syrec/ir"

// Overlap is the outcome of comparing two variable accesses.
type Overlap uint8

const (
	NotOverlapping Overlap = iota
	MaybeOverlapping
	Overlapping
	// DifferentVariables is returned when a and b don't reference the
	// same declared variable; checkOverlap is not meaningful across
	// distinct variables.
	DifferentVariables
)

// OverlapResult carries the classification and, when Overlapping, the
// diagnostic detail spec.md §4.5 step 5 asks for: the accessed value per
// dimension and the first overlapping bit.
type OverlapResult struct {
	Class           Overlap
	DimensionValues []uint
	FirstOverlapBit uint
	HasOverlapBit   bool
}

// CheckOverlap classifies whether accesses a and b could reference
// overlapping storage, per §4.5. The result is symmetric:
// CheckOverlap(a, b) == CheckOverlap(b, a) for every a, b.
func CheckOverlap(a, b *ir.VariableAccess) OverlapResult {
	if !sameVariable(a.Variable, b.Variable) {
		return OverlapResult{Class: DifferentVariables}
	}

	dimValues, dimClass, decided := compareDimensions(a, b)
	if decided {
		return OverlapResult{Class: dimClass, DimensionValues: dimValues}
	}

	return compareBitRanges(a, b, dimValues)
}

func sameVariable(a, b *ir.Variable) bool {
	if a.Identifier != b.Identifier || a.Bitwidth != b.Bitwidth || len(a.Dimensions) != len(b.Dimensions) {
		return false
	}

	for i := range a.Dimensions {
		if a.Dimensions[i] != b.Dimensions[i] {
			return false
		}
	}

	return true
}

// compareDimensions implements §4.5 steps 1-2. decided is true when the
// dimension comparison alone settles the classification (NotOverlapping or
// MaybeOverlapping); when false, both accesses denote the exact same
// dimension indices and the caller must go on to compare bit ranges.
func compareDimensions(a, b *ir.VariableAccess) (values []uint, class Overlap, decided bool) {
	n := min(len(a.Indices), len(b.Indices))
	values = make([]uint, 0, n)

	for i := 0; i < n; i++ {
		av32, aKnown := ir.AsConstant(a.Indices[i])
		bv32, bKnown := ir.AsConstant(b.Indices[i])
		av, bv := uint(av32), uint(bv32)

		switch {
		case aKnown && bKnown && av == bv:
			values = append(values, av)
		case aKnown && bKnown:
			return nil, NotOverlapping, true
		default:
			return nil, MaybeOverlapping, true
		}
	}

	// Step 2: one side may specify more index expressions than the
	// other; the shorter side denotes an access across all remaining
	// dimensions.
	longer, extents := longerIndices(a, b)
	for i := n; i < len(longer); i++ {
		if extents[i] == 1 {
			values = append(values, 0)
			continue
		}

		return nil, MaybeOverlapping, true
	}

	return values, NotOverlapping, false
}

func longerIndices(a, b *ir.VariableAccess) ([]ir.Expression, []uint) {
	if len(a.Indices) >= len(b.Indices) {
		return a.Indices, a.Variable.Dimensions
	}

	return b.Indices, b.Variable.Dimensions
}

// bitEndpoint is either a known constant or unknown.
type bitEndpoint struct {
	value uint
	known bool
}

// effectiveRange returns access's effective bit range: the declared range
// if present, else [0, bitwidth-1] as a fully-known constant range.
func effectiveRange(access *ir.VariableAccess) (start, end bitEndpoint) {
	br, present := access.Range.Get()
	if !present {
		return bitEndpoint{0, true}, bitEndpoint{access.Variable.Bitwidth - 1, true}
	}

	sv, sKnown := br.Start.ConstantValue().Get()
	ev, eKnown := br.End.ConstantValue().Get()

	return bitEndpoint{sv, sKnown}, bitEndpoint{ev, eKnown}
}

// ordered returns (lo, hi) for a fully-known endpoint pair, ascending.
func ordered(s, e bitEndpoint) (lo, hi uint) {
	if s.value <= e.value {
		return s.value, e.value
	}

	return e.value, s.value
}

// compareBitRanges implements §4.5 steps 3-5, reached only once dimension
// indices are confirmed identical on both sides.
func compareBitRanges(a, b *ir.VariableAccess, dimValues []uint) OverlapResult {
	aStart, aEnd := effectiveRange(a)
	bStart, bEnd := effectiveRange(b)

	aKnownBoth := aStart.known && aEnd.known
	bKnownBoth := bStart.known && bEnd.known

	switch {
	case !aKnownBoth && !bKnownBoth:
		return OverlapResult{Class: MaybeOverlapping, DimensionValues: dimValues}
	case aKnownBoth && bKnownBoth:
		aLo, aHi := ordered(aStart, aEnd)
		bLo, bHi := ordered(bStart, bEnd)

		if aHi < bLo || bHi < aLo {
			return OverlapResult{Class: NotOverlapping, DimensionValues: dimValues}
		}

		first := max(aLo, bLo)

		return OverlapResult{
			Class: Overlapping, DimensionValues: dimValues,
			FirstOverlapBit: first, HasOverlapBit: true,
		}
	default:
		return compareSingleKnownSide(aKnownBoth, aStart, aEnd, bStart, bEnd, dimValues)
	}
}

// compareSingleKnownSide handles the two "one side fully known, the other
// not" shapes from §4.5 step 4: a fully-known single bit against a
// fully-known range, and a partially-known side (exactly one known
// endpoint) against a fully-known side.
func compareSingleKnownSide(aKnownBoth bool, aStart, aEnd, bStart, bEnd bitEndpoint, dimValues []uint) OverlapResult {
	knownStart, knownEnd := bStart, bEnd
	unknownStart, unknownEnd := aStart, aEnd

	if aKnownBoth {
		knownStart, knownEnd = aStart, aEnd
		unknownStart, unknownEnd = bStart, bEnd
	}

	lo, hi := ordered(knownStart, knownEnd)

	// Exactly one endpoint known on the unknown side: check whether that
	// known endpoint lies in the other range.
	switch {
	case unknownStart.known && !unknownEnd.known:
		return classifyPointAgainstRange(unknownStart.value, lo, hi, dimValues)
	case !unknownStart.known && unknownEnd.known:
		return classifyPointAgainstRange(unknownEnd.value, lo, hi, dimValues)
	default:
		return OverlapResult{Class: MaybeOverlapping, DimensionValues: dimValues}
	}
}

func classifyPointAgainstRange(point, lo, hi uint, dimValues []uint) OverlapResult {
	if point < lo || point > hi {
		return OverlapResult{Class: MaybeOverlapping, DimensionValues: dimValues}
	}

	return OverlapResult{
		Class: Overlapping, DimensionValues: dimValues,
		FirstOverlapBit: point, HasOverlapBit: true,
	}
}
