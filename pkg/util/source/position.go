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

// Package source carries the token-position information that flows from the
// (out-of-scope) SyReC lexer/parser, through every parse-tree node and IR
// node, into diagnostics. Since lexing itself is not implemented here, this
// package deliberately stops at (line, column) pairs rather than attempting
// to re-derive them from raw source text.
package source

import "fmt"

// Position identifies a single token's location within a source file:
// 1-indexed line and column, matching how editors and compilers usually
// report positions to a human.
type Position struct {
	Line   uint
	Column uint
}

// NewPosition constructs a position from a 1-indexed line and column.
func NewPosition(line, column uint) Position {
	return Position{line, column}
}

// Unknown is used where a node was synthesised internally and has no
// corresponding token in the original source (e.g. a folded constant has the
// position of the expression it replaced, but there is otherwise no "source
// position of the empty for-loop step").
var Unknown = Position{0, 0}

// IsKnown reports whether this position refers to an actual token.
func (p Position) IsKnown() bool {
	return p != Unknown
}

// String renders the position the way compilers conventionally do:
// "line:column".
func (p Position) String() string {
	if !p.IsKnown() {
		return "?:?"
	}

	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
