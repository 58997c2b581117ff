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
package parsetree

import "github.com/syrec-lang/syrec/pkg/util/source"

// ParamKind is a parameter's declared direction, as written in the
// concrete syntax ("in"/"out"/"inout").
type ParamKind uint8

const (
	ParamIn ParamKind = iota
	ParamOut
	ParamInout
)

// Param is one entry of a module's parameter list: "in|out|inout ident
// dim-list (bw)".
type Param struct {
	Pos        source.Position
	Kind       ParamKind
	Identifier string
	Dimensions []NumberNode
	// Bitwidth is nil when the declaration omitted "(bw)", in which case
	// the analyzer applies the configured default bit-width.
	Bitwidth NumberNode
}

func (p *Param) Position() source.Position { return p.Pos }

// VarGroupKind is a local variable group's declared storage class
// ("state"/"wire").
type VarGroupKind uint8

const (
	VarGroupState VarGroupKind = iota
	VarGroupWire
)

// LocalVarGroup is "state|wire ident dim-list (bw), …" — one storage class
// and shape shared by every identifier it declares.
type LocalVarGroup struct {
	Pos         source.Position
	Kind        VarGroupKind
	Identifiers []string
	Dimensions  []NumberNode
	Bitwidth    NumberNode
}

func (g *LocalVarGroup) Position() source.Position { return g.Pos }

// Module is "module ident(paramList) { varList; stmtList }".
type Module struct {
	Pos        source.Position
	Identifier string
	Parameters []*Param
	Locals     []*LocalVarGroup
	Statements []StatementNode
}

func (m *Module) Position() source.Position { return m.Pos }

// Program is the root node: an ordered sequence of module declarations.
type Program struct {
	Modules []*Module
}
