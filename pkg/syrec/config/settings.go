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

// Package config binds the analyzer's two caller-supplied knobs
// (spec.md §6) to cobra flags, the way the teacher's pkg/cmd/util.go binds
// its own flags to typed Go values.
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syrec-lang/syrec/pkg/syrec/analyzer"
	"github.com/syrec-lang/syrec/pkg/syrec/ir"
)

// Settings is the analyzer's own settings type. The config layer has no
// fields of its own to add to it, so it reads flags directly into the type
// the analyzer already defines rather than maintaining a parallel struct
// that would need to be kept in sync with it.
type Settings = analyzer.Settings

// ReadProgramSettings reads "default-bitwidth" and "truncation-mode" off
// cmd's flags and validates them, mirroring the fail-fast GetUint/GetString
// helpers in the teacher's pkg/cmd/util.go except that here a malformed
// value is returned as an error rather than exiting the process, so the
// CLI layer decides how to report it.
func ReadProgramSettings(cmd *cobra.Command) (Settings, error) {
	bitwidth, err := cmd.Flags().GetUint("default-bitwidth")
	if err != nil {
		return Settings{}, err
	}

	if bitwidth == 0 || bitwidth > ir.MaxSupportedBitwidth {
		return Settings{}, fmt.Errorf("default-bitwidth must be between 1 and %d, got %d", ir.MaxSupportedBitwidth, bitwidth)
	}

	mode, err := cmd.Flags().GetString("truncation-mode")
	if err != nil {
		return Settings{}, err
	}

	truncationMode, err := parseTruncationMode(mode)
	if err != nil {
		return Settings{}, err
	}

	return Settings{DefaultBitwidth: bitwidth, IntegerTruncationMode: truncationMode}, nil
}

func parseTruncationMode(mode string) (ir.TruncationMode, error) {
	switch mode {
	case "modulo":
		return ir.TruncateModulo, nil
	case "bitwise-and":
		return ir.TruncateBitwiseAnd, nil
	default:
		return 0, fmt.Errorf("unknown truncation-mode %q, expected \"modulo\" or \"bitwise-and\"", mode)
	}
}
