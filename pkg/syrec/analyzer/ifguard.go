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
	"fmt"

	"github.com/syrec-lang/syrec/pkg/syrec/ir"
)

// recordExpression flattens an expression into a sequence of atoms
// (identifier, constant, operator, bracket-open/close, dimension/bit-range
// markers) the way the if-guard structural-equality check needs: two
// expressions match iff their recorded atom sequences are identical,
// regardless of how each was built. This is the "expression-components
// recorder" §4.4 describes, implemented directly over the built IR rather
// than the parse tree so that folding on one side of an if/fi pair (e.g.
// one guard folds to a constant and the other doesn't) is compared
// faithfully against what each guard actually evaluates.
func recordExpression(e ir.Expression) []string {
	switch n := e.(type) {
	case *ir.Numeric:
		return append([]string{"num"}, recordNumber(n.Value)...)

	case *ir.VariableExpr:
		return append([]string{"var"}, recordAccess(n.Access)...)

	case *ir.Binary:
		atoms := []string{"("}
		atoms = append(atoms, recordExpression(n.Lhs)...)
		atoms = append(atoms, n.Op.Symbol())
		atoms = append(atoms, recordExpression(n.Rhs)...)
		atoms = append(atoms, ")")

		return atoms

	case *ir.Shift:
		atoms := []string{"("}
		atoms = append(atoms, recordExpression(n.Lhs)...)
		atoms = append(atoms, n.Op.Symbol())
		atoms = append(atoms, recordNumber(n.Amount)...)
		atoms = append(atoms, ")")

		return atoms

	default:
		return []string{"?"}
	}
}

func recordNumber(n ir.Number) []string {
	switch v := n.(type) {
	case *ir.ConstantInt:
		return []string{fmt.Sprintf("c%d", v.Value)}

	case *ir.LoopVarRef:
		return []string{"l" + v.Name}

	case *ir.ConstExpr:
		atoms := []string{"("}
		atoms = append(atoms, recordNumber(v.Lhs)...)
		atoms = append(atoms, numberOpSymbol(v.Op))
		atoms = append(atoms, recordNumber(v.Rhs)...)
		atoms = append(atoms, ")")

		return atoms

	default:
		return []string{"?"}
	}
}

func recordAccess(access *ir.VariableAccess) []string {
	atoms := []string{"id:" + access.Variable.Identifier}

	for _, idx := range access.Indices {
		atoms = append(atoms, "[")
		atoms = append(atoms, recordExpression(idx)...)
		atoms = append(atoms, "]")
	}

	if br, ok := access.Range.Get(); ok {
		atoms = append(atoms, ".")
		atoms = append(atoms, recordNumber(br.Start)...)
		atoms = append(atoms, ":")
		atoms = append(atoms, recordNumber(br.End)...)
	}

	return atoms
}

func numberOpSymbol(op ir.NumberOp) string {
	switch op {
	case ir.NumberSubtract:
		return "-"
	case ir.NumberMultiply:
		return "*"
	case ir.NumberDivide:
		return "/"
	default:
		return "+"
	}
}

// guardsMatch reports whether cond and fiCond are structurally identical,
// per §4.4's if-guard reversibility check.
func guardsMatch(cond, fiCond ir.Expression) bool {
	a := recordExpression(cond)
	b := recordExpression(fiCond)

	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
