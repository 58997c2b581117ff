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
package ir

// Program is the top-level analysis result: every module the input parse
// tree declared, in input order. Module identifiers need not be unique —
// overloads are permitted and resolved at call sites (pkg/syrec/symtab).
type Program struct {
	Modules []*Module
}

// NewProgram constructs a Program from its modules in declaration order.
func NewProgram(modules []*Module) *Program {
	return &Program{Modules: modules}
}
