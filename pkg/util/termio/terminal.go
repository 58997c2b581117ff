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

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when stdout isn't a terminal (e.g. output piped to a
// file in CI) and there is therefore no width to query.
const DefaultWidth = 120

// StdoutWidth returns the current width of the terminal attached to stdout,
// or DefaultWidth if stdout is not a terminal. The diagnostic renderer uses
// this to decide how aggressively to clip the message column of its report
// table.
func StdoutWidth() uint {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}

	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}

	return uint(w)
}

// IsTerminal reports whether stdout is attached to an interactive terminal.
// Diagnostic rendering uses this to decide whether ANSI colour escapes are
// safe to emit.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
