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
	"github.com/syrec-lang/syrec/pkg/syrec/diagnostics"
	"github.com/syrec-lang/syrec/pkg/syrec/ir"
	"github.com/syrec-lang/syrec/pkg/syrec/validate"
	"github.com/syrec-lang/syrec/pkg/util"
	"github.com/syrec-lang/syrec/pkg/util/source"
)

// withForbiddenAccess runs build with forbidden installed as the active
// restriction (§4.3), restoring whatever restriction was active before on
// return. Used while visiting the right-hand side of an assignment or swap,
// where the left-hand target must not overlap anything the right-hand side
// reads.
func (a *Analyzer) withForbiddenAccess(forbidden *ir.VariableAccess, build func()) {
	previous := a.forbiddenAccess
	a.forbiddenAccess = util.Some(forbidden)
	build()
	a.forbiddenAccess = previous
}

// checkSelfAssignmentOverlap flags candidate if it overlaps forbidden,
// per the restriction registry described in §4.3.
func (a *Analyzer) checkSelfAssignmentOverlap(pos source.Position, forbidden, candidate *ir.VariableAccess) {
	result := validate.CheckOverlap(forbidden, candidate)
	if result.Class != validate.Overlapping {
		return
	}

	a.diags.Add(diagnostics.New(diagnostics.SelfAssignmentOverlap, pos,
		"right-hand side reads a region overlapping the assignment target"))
}
