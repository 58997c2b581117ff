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

import (
	"fmt"

	"github.com/syrec-lang/syrec/pkg/util/source"
)

// Diagnostic is a single finding produced during semantic analysis. Message
// is the free-form, already-formatted human text ("bit-width mismatch:
// expected 8, found 4"); Code is the stable machine-readable identifier
// pulled from the Kind's table entry, kept separate so tooling can match on
// it without parsing Message.
type Diagnostic struct {
	Kind     Kind
	Code     string
	Severity Severity
	Position source.Position
	Message  string
}

// New constructs a Diagnostic for the given kind at the given position,
// formatting Message from format/args the way fmt.Sprintf does.
func New(kind Kind, pos source.Position, format string, args ...any) Diagnostic {
	return Diagnostic{
		Kind:     kind,
		Code:     kind.Code(),
		Severity: kind.Severity(),
		Position: pos,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface so a Diagnostic can be passed
// anywhere a Go error is expected (e.g. wrapped by a CLI exit path).
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: [%s] %s", d.Position, d.Code, d.Message)
}
