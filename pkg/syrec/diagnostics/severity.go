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

// Package diagnostics implements the semantic analyzer's error taxonomy and
// its append-only diagnostic sink. The analyzer never throws: every failed
// sub-visit records one of these and returns an empty result up the call
// chain (see pkg/syrec/analyzer).
package diagnostics

// Severity distinguishes diagnostics that make a program invalid
// (Error) from ones that are merely worth flagging (Warning). Kept as its
// own named type, rather than a bare bool, so a future Hint severity can be
// added without touching every call site.
type Severity uint8

const (
	// Warning indicates a diagnostic which does not, by itself, prevent the
	// program from being considered semantically valid.
	Warning Severity = iota
	// Error indicates a diagnostic which means analysis did not fully
	// succeed; spec.md's "success" is defined as zero Error-severity
	// diagnostics.
	Error
)

// String renders the severity as the terminal renderer's severity column
// shows it.
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}
