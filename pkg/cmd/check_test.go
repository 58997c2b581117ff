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
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syrec-lang/syrec/pkg/syrec/analyzer"
	"github.com/syrec-lang/syrec/pkg/syrec/parsetree"
)

func TestCheckFileReturnsFalseWithoutParseFileConfigured(t *testing.T) {
	previous := ParseFile
	ParseFile = nil

	defer func() { ParseFile = previous }()

	ok := checkFile("missing.sy", analyzer.DefaultSettings(), false)

	assert.False(t, ok)
}

func TestCheckFileReturnsFalseOnParseError(t *testing.T) {
	previous := ParseFile
	ParseFile = func(string) (*parsetree.Program, error) {
		return nil, assertError{}
	}

	defer func() { ParseFile = previous }()

	ok := checkFile("bad.sy", analyzer.DefaultSettings(), false)

	assert.False(t, ok)
}

func TestCheckFileReturnsTrueForCleanProgram(t *testing.T) {
	previous := ParseFile
	ParseFile = func(string) (*parsetree.Program, error) {
		return &parsetree.Program{}, nil
	}

	defer func() { ParseFile = previous }()

	ok := checkFile("empty.sy", analyzer.DefaultSettings(), false)

	assert.True(t, ok)
}

type assertError struct{}

func (assertError) Error() string { return "parse failed" }
