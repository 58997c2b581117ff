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

// Bag accumulates diagnostics during a single analysis run. Analyzer
// sub-visitors take a *Bag and append to it rather than returning an error,
// so a bad sub-expression doesn't abort analysis of everything around it;
// the whole program is always walked, and Entries() reflects everything
// that went wrong along the way.
type Bag struct {
	entries []Diagnostic
}

// NewBag constructs an empty diagnostic sink.
func NewBag() *Bag {
	return &Bag{}
}

// Add appends one diagnostic.
func (b *Bag) Add(d Diagnostic) {
	b.entries = append(b.entries, d)
}

// Entries returns every diagnostic recorded so far, in recording order.
func (b *Bag) Entries() []Diagnostic {
	return b.entries
}

// HasErrors reports whether any recorded diagnostic has Error severity.
// spec.md defines analysis success as HasErrors() == false.
func (b *Bag) HasErrors() bool {
	for _, d := range b.entries {
		if d.Severity == Error {
			return true
		}
	}

	return false
}

// Len returns the total number of recorded diagnostics, errors and warnings
// alike.
func (b *Bag) Len() int {
	return len(b.entries)
}
