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
	"io"

	"github.com/syrec-lang/syrec/pkg/util/termio"
)

// severityWidth, codeWidth and positionWidth cap the three narrow columns;
// the message column absorbs whatever width remains after them.
const (
	severityWidth = 7
	codeWidth     = 6
	positionWidth = 9
)

// Render writes one bordered row per diagnostic to w: severity, code,
// position and message, coloured by severity when colour is true. Intended
// to be called once after analysis completes, on the Bag's full Entries().
func Render(w io.Writer, entries []Diagnostic, colour bool, width uint) {
	if len(entries) == 0 {
		return
	}

	table := termio.NewFormattedTable(4, uint(len(entries)))

	for i, d := range entries {
		table.SetRow(uint(i),
			severityCell(d.Severity),
			termio.NewText(d.Code),
			termio.NewColouredText(d.Position.String(), termio.TERM_CYAN),
			termio.NewText(d.Message),
		)
	}

	table.SetMaxWidth(0, severityWidth)
	table.SetMaxWidth(1, codeWidth)
	table.SetMaxWidth(2, positionWidth)

	if width > severityWidth+codeWidth+positionWidth+8 {
		table.SetMaxWidth(3, width-(severityWidth+codeWidth+positionWidth+8))
	}

	table.Print(w, colour)
}

func severityCell(s Severity) termio.FormattedText {
	switch s {
	case Error:
		return termio.NewColouredText(s.String(), termio.TERM_RED)
	default:
		return termio.NewColouredText(s.String(), termio.TERM_YELLOW)
	}
}
