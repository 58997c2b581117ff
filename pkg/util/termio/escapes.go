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
package termio

import "fmt"

// TERM_RED is the foreground colour used for Error-severity diagnostics.
const TERM_RED = uint(1)

// TERM_YELLOW is the foreground colour used for Warning-severity
// diagnostics.
const TERM_YELLOW = uint(3)

// TERM_CYAN is the foreground colour used for source positions.
const TERM_CYAN = uint(6)

// AnsiEscape is an ANSI escape sequence for formatting terminal text.
// Escapes compose: calling FgColour on an existing escape appends to it
// rather than replacing it.
type AnsiEscape struct {
	escape string
	count  uint
}

// NewAnsiEscape constructs an empty escape sequence.
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{"\033", 0}
}

// ResetAnsiEscape constructs the escape which resets all formatting.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{"\033[0", 1}
}

// BoldAnsiEscape constructs a bold-text escape.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{"\033[1", 1}
}

// FgColour appends a foreground-colour directive to this escape.
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	col += 30

	var escape string
	if p.count > 0 {
		escape = fmt.Sprintf("%s;%d", p.escape, col)
	} else {
		escape = fmt.Sprintf("%s[%d", p.escape, col)
	}

	return AnsiEscape{escape, p.count + 1}
}

// Build finalises this escape into its textual form.
func (p AnsiEscape) Build() string {
	return fmt.Sprintf("%sm", p.escape)
}
