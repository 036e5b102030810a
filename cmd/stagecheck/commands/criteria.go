package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ovinelab/stagecheck/internal/criteria"
	"github.com/ovinelab/stagecheck/internal/layout"
)

func newCriteriaCmd() *cobra.Command {
	var output string
	var workDirFlag string

	cmd := &cobra.Command{
		Use:   "criteria",
		Short: "Write the stage-1 validation-criteria document",
		Long: `Write the static validation-criteria JSON consumed by the download and
genome-QC stages. The thresholds are published constants, never computed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := output
			if path == "" {
				workDir, err := findWorkDir(workDirFlag)
				if err != nil {
					return err
				}
				l, err := layout.Resolve(workDir)
				if err != nil {
					return err
				}
				path = filepath.Join(workDir, l.CriteriaPath)
			}

			if err := criteria.Write(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated validation criteria: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default: <work-dir>/stage1_validation_criteria.json)")
	cmd.Flags().StringVar(&workDirFlag, "work-dir", "", "Pipeline checkout (default: discovered from cwd)")
	return cmd
}
