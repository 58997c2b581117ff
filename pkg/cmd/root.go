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

// Package cmd implements the syrec-check command-line interface: a root
// command plus a "check" subcommand, built with cobra the way the
// teacher's own pkg/cmd package is.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is empty unless set at link time (e.g. with -ldflags "-X"); a
// plain "go build"/"go run" leaves it empty.
var Version string

var rootCmd = &cobra.Command{
	Use:   "syrec-check",
	Short: "A semantic analyzer for the SyReC reversible-computing language.",
	Long:  "syrec-check type-checks SyReC source and reports diagnostics for violations of the language's reversibility rules.",
}

// Execute adds all child commands to the root command and runs it. It is
// called once from cmd/syrec-check/main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
