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

// FormattedText is a chunk of text with an optional ANSI format applied,
// e.g. a diagnostic severity cell coloured red for an Error and yellow for a
// Warning.
type FormattedText struct {
	format *AnsiEscape
	text   []rune
}

// NewText constructs a chunk of unformatted text.
func NewText(text string) FormattedText {
	return FormattedText{nil, []rune(text)}
}

// NewColouredText constructs a chunk of text coloured with the given
// foreground colour (one of the TERM_ constants in escapes.go).
func NewColouredText(text string, colour uint) FormattedText {
	escape := NewAnsiEscape().FgColour(colour)
	return FormattedText{&escape, []rune(text)}
}

// Len returns the number of characters in this chunk, not counting any
// formatting escape.
func (p FormattedText) Len() uint {
	return uint(len(p.text))
}

// Clip truncates this chunk to at most width characters, returning the
// clipped copy.
func (p FormattedText) Clip(width uint) FormattedText {
	if uint(len(p.text)) <= width {
		return p
	}

	return FormattedText{p.format, p.text[:width]}
}

// Pad right-pads this chunk with spaces up to width characters, returning
// the padded copy. A chunk already at or beyond width is returned as-is.
func (p FormattedText) Pad(width uint) FormattedText {
	n := uint(len(p.text))
	if n >= width {
		return p
	}

	padded := make([]rune, width)
	copy(padded, p.text)

	for i := n; i < width; i++ {
		padded[i] = ' '
	}

	return FormattedText{p.format, padded}
}

// Bytes renders this chunk wrapped in its ANSI escape (if any) followed by a
// reset code.
func (p FormattedText) Bytes() []byte {
	if p.format == nil {
		return []byte(string(p.text))
	}

	out := []byte(p.format.Build())
	out = append(out, []byte(string(p.text))...)

	return append(out, []byte(ResetAnsiEscape().Build())...)
}
