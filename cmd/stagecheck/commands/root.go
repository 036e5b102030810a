// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Stagecheck validates the data-acquisition stage of the sheep pangenome
pipeline: required file structure, genome catalog integrity, samplesheet
classification logic, and workflow module syntax. It publishes the
validation-criteria contract consumed by the downstream stages.
*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the stagecheck root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("STAGECHECK_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "stagecheck",
		Short:         "Stage-1 validation harness for the sheep pangenome pipeline",
		Long:          "Stagecheck checks a pipeline checkout before stage 1 runs: file structure, genome catalog integrity, samplesheet classification and module syntax.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of stagecheck",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stagecheck version %s\n", version)
		},
	})

	cmd.AddCommand(GetRunCmd())
	cmd.AddCommand(newCriteriaCmd())

	return cmd
}
