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
package diagnostics_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syrec-lang/syrec/pkg/syrec/diagnostics"
	"github.com/syrec-lang/syrec/pkg/util/source"
)

func TestBagEmptyHasNoErrors(t *testing.T) {
	bag := diagnostics.NewBag()

	assert.False(t, bag.HasErrors())
	assert.Equal(t, 0, bag.Len())
	assert.Empty(t, bag.Entries())
}

func TestBagHasErrorsOnlyWhenErrorSeverityPresent(t *testing.T) {
	bag := diagnostics.NewBag()

	bag.Add(diagnostics.New(diagnostics.DivisionByZero, source.Unknown, "division by zero"))
	assert.True(t, bag.HasErrors())
	assert.Equal(t, 1, bag.Len())
}

func TestKindFixesCodeCategoryAndSeverity(t *testing.T) {
	assert.Equal(t, "E0301", diagnostics.DivisionByZero.Code())
	assert.Equal(t, diagnostics.Arithmetic, diagnostics.DivisionByZero.Category())
	assert.Equal(t, diagnostics.Error, diagnostics.DivisionByZero.Severity())
}

func TestDiagnosticErrorIncludesCodeAndPosition(t *testing.T) {
	pos := source.NewPosition(3, 7)
	d := diagnostics.New(diagnostics.BitWidthMismatch, pos, "expected %d, found %d", 8, 4)

	assert.Equal(t, "3:7: [E0201] expected 8, found 4", d.Error())
}

func TestRenderWritesOneRowPerEntry(t *testing.T) {
	bag := diagnostics.NewBag()
	bag.Add(diagnostics.New(diagnostics.DivisionByZero, source.NewPosition(1, 1), "division by zero"))
	bag.Add(diagnostics.New(diagnostics.NegativeStepNotAllowed, source.NewPosition(2, 4), "negative step"))

	var out bytes.Buffer
	diagnostics.Render(&out, bag.Entries(), false, 120)

	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("\n")))
}

func TestRenderNoOpOnEmpty(t *testing.T) {
	var out bytes.Buffer
	diagnostics.Render(&out, nil, true, 120)

	assert.Empty(t, out.Bytes())
}
