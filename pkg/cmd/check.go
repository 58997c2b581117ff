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
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/syrec-lang/syrec/pkg/syrec/analyzer"
	"github.com/syrec-lang/syrec/pkg/syrec/config"
	"github.com/syrec-lang/syrec/pkg/syrec/diagnostics"
	"github.com/syrec-lang/syrec/pkg/syrec/parsetree"
	"github.com/syrec-lang/syrec/pkg/util/termio"
)

// ParseFile turns a source file into a parse tree. No concrete SyReC
// lexer/parser lives in this repository (see the Non-goals in the design
// document this command is built against), so the check command is wired
// against this injectable hook rather than a parser of its own — it is
// nil by default and must be assigned by whatever embeds this package
// before checkCmd.Run is reached.
var ParseFile func(filename string) (*parsetree.Program, error)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file...",
	Short: "Check one or more SyReC source files for semantic errors.",
	Long:  "Check parses each given file into a parse tree via the configured ParseFile hook, analyzes it, and reports diagnostics.",
	Run:   runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}

	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}

	settings, err := config.ReadProgramSettings(cmd)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	log.WithFields(log.Fields{
		"defaultBitwidth": settings.DefaultBitwidth,
		"truncationMode":  settings.IntegerTruncationMode,
	}).Debug("resolved analysis settings")

	noColor := GetFlag(cmd, "no-color")
	exitCode := 0

	for _, filename := range args {
		if !checkFile(filename, settings, !noColor) {
			exitCode = 1
		}
	}

	os.Exit(exitCode)
}

// checkFile analyzes one source file and renders its diagnostics, returning
// true iff analysis found no Error-severity diagnostic. It returns false
// without analyzing when no ParseFile hook is set or parsing fails.
func checkFile(filename string, settings analyzer.Settings, colour bool) bool {
	if ParseFile == nil {
		fmt.Printf("%s: no parser configured\n", filename)
		return false
	}

	log.Infof("checking %s", filename)

	tree, err := ParseFile(filename)
	if err != nil {
		fmt.Printf("%s: %s\n", filename, err)
		return false
	}

	a := analyzer.New(settings)
	a.AnalyzeProgram(tree)

	bag := a.Diagnostics()

	log.WithFields(log.Fields{
		"file":  filename,
		"count": bag.Len(),
	}).Debug("analysis complete")

	diagnostics.Render(os.Stdout, bag.Entries(), colour && termio.IsTerminal(), termio.StdoutWidth())

	return !bag.HasErrors()
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Uint("default-bitwidth", 32, "bit-width applied to a declaration that omits \"(bw)\"")
	checkCmd.Flags().String("truncation-mode", "modulo", "how an oversized constant is truncated: \"modulo\" or \"bitwise-and\"")
	checkCmd.Flags().Bool("no-color", false, "suppress ANSI colour escapes in diagnostic output")
}
