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
package config_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syrec-lang/syrec/pkg/syrec/config"
	"github.com/syrec-lang/syrec/pkg/syrec/ir"
)

func newCommand(bitwidth uint, mode string) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().Uint("default-bitwidth", bitwidth, "")
	cmd.Flags().String("truncation-mode", mode, "")

	return cmd
}

func TestReadProgramSettingsAcceptsValidFlags(t *testing.T) {
	cmd := newCommand(16, "bitwise-and")

	settings, err := config.ReadProgramSettings(cmd)

	require.NoError(t, err)
	assert.Equal(t, uint(16), settings.DefaultBitwidth)
	assert.Equal(t, ir.TruncateBitwiseAnd, settings.IntegerTruncationMode)
}

func TestReadProgramSettingsDefaultsToModulo(t *testing.T) {
	cmd := newCommand(32, "modulo")

	settings, err := config.ReadProgramSettings(cmd)

	require.NoError(t, err)
	assert.Equal(t, ir.TruncateModulo, settings.IntegerTruncationMode)
}

func TestReadProgramSettingsRejectsZeroBitwidth(t *testing.T) {
	cmd := newCommand(0, "modulo")

	_, err := config.ReadProgramSettings(cmd)

	assert.Error(t, err)
}

func TestReadProgramSettingsRejectsOversizedBitwidth(t *testing.T) {
	cmd := newCommand(33, "modulo")

	_, err := config.ReadProgramSettings(cmd)

	assert.Error(t, err)
}

func TestReadProgramSettingsRejectsUnknownTruncationMode(t *testing.T) {
	cmd := newCommand(32, "round-to-nearest")

	_, err := config.ReadProgramSettings(cmd)

	assert.Error(t, err)
}
