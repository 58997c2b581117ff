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

// Package parsetree defines the shape of the raw parse tree the semantic
// analyzer consumes: one node type per SyReC grammar production, each
// carrying its source position. It has no behaviour beyond plain data — it
// is the seam a concrete-syntax parser (out of scope here) produces and the
// analyzer (pkg/syrec/analyzer) consumes, and the shape hand-built parse
// trees use in tests.
package parsetree

import "github.com/syrec-lang/syrec/pkg/util/source"

// Node is implemented by every parse-tree node; it exposes the token
// position the concrete-syntax parser recorded for that production.
type Node interface {
	Position() source.Position
}
