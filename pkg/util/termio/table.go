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

// Package termio renders tabular, optionally-coloured output to a terminal.
// It backs the diagnostic report printed by the syrec-check CLI.
package termio

import (
	"fmt"
	"io"
)

// FormattedTable lays out rows of FormattedText in aligned, bordered
// columns, clipped and padded to the widest entry seen per column (capped
// by SetMaxWidth).
type FormattedTable struct {
	widths []uint
	rows   [][]FormattedText
}

// NewFormattedTable constructs an empty table with the given number of
// columns and rows.
func NewFormattedTable(columns uint, rows uint) *FormattedTable {
	t := &FormattedTable{
		widths: make([]uint, columns),
		rows:   make([][]FormattedText, rows),
	}

	for i := range t.rows {
		t.rows[i] = make([]FormattedText, columns)
	}

	return t
}

// Height returns the number of rows in this table.
func (p *FormattedTable) Height() uint {
	return uint(len(p.rows))
}

// SetRow replaces the entire contents of one row.
func (p *FormattedTable) SetRow(row uint, cells ...FormattedText) {
	if len(cells) != len(p.widths) {
		panic("incorrect number of columns")
	}

	for i, cell := range cells {
		p.widths[i] = max(p.widths[i], cell.Len())
	}

	p.rows[row] = cells
}

// SetMaxWidth caps the rendered width of a column, clipping any wider
// content. Used to keep the free-text message column from overrunning the
// detected terminal width.
func (p *FormattedTable) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], width)
}

// Print writes the table to w, one bordered row per line. Disabling escapes
// is for environments that don't render ANSI colour (e.g. output captured
// to a CI log), where raw escape bytes would otherwise show up as noise.
func (p *FormattedTable) Print(w io.Writer, escapes bool) {
	for _, row := range p.rows {
		for col, cell := range row {
			width := p.widths[col]
			cell = cell.Clip(width).Pad(width)

			if escapes {
				fmt.Fprintf(w, " %s |", cell.Bytes())
			} else {
				fmt.Fprintf(w, " %s |", string(cell.text))
			}
		}

		fmt.Fprintln(w)
	}
}
