package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ovinelab/stagecheck/internal/checks"
	"github.com/ovinelab/stagecheck/internal/layout"
	"github.com/ovinelab/stagecheck/internal/nextflow"
	"github.com/ovinelab/stagecheck/internal/reports"
	"github.com/ovinelab/stagecheck/internal/runner"
	"github.com/ovinelab/stagecheck/internal/workdir"
)

var (
	runJSON            bool
	runWorkDir         string
	runStateDir        string
	runNextflowTimeout time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run <command|check> [flags]",
	Short: "Run stage-1 validation checks",
	Long: `Run the stage-1 validation checks against a pipeline checkout.
State is kept in .stagecheck/run to allow resuming failures and reporting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		// Arguments that aren't subcommands are check IDs.
		return runChecks(cmd, args)
	},
}

func init() {
	runCmd.PersistentFlags().BoolVar(&runJSON, "json", false, "Output results in JSON")
	runCmd.PersistentFlags().StringVar(&runWorkDir, "work-dir", "", "Pipeline checkout to validate (default: discovered from cwd)")
	runCmd.PersistentFlags().StringVar(&runStateDir, "state-dir", filepath.Join(".stagecheck", "run"), "Directory to store run state")
	runCmd.PersistentFlags().DurationVar(&runNextflowTimeout, "nextflow-timeout", nextflow.DefaultTimeout, "Timeout per module syntax check")

	runCmd.AddCommand(runListCmd)
	runCmd.AddCommand(runAllCmd)
	runCmd.AddCommand(runResumeCmd)
	runCmd.AddCommand(runReportCmd)
	runCmd.AddCommand(runResetCmd)
}

// GetRunCmd exposes the run command group for root registration.
func GetRunCmd() *cobra.Command {
	return runCmd
}

func resolveWorkDir() (string, error) {
	return findWorkDir(runWorkDir)
}

// findWorkDir resolves an explicit --work-dir, or discovers the checkout
// root above the current directory.
func findWorkDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return workdir.Find(wd)
}

func resolveStateDir(workDir string) string {
	if filepath.IsAbs(runStateDir) {
		return runStateDir
	}
	return filepath.Join(workDir, runStateDir)
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func setupRunner(cmd *cobra.Command) (*runner.Runner, error) {
	workDir, err := resolveWorkDir()
	if err != nil {
		return nil, err
	}

	l, err := layout.Resolve(workDir)
	if err != nil {
		return nil, err
	}

	registry, err := checks.Registry(workDir, l)
	if err != nil {
		return nil, err
	}

	stateDir := resolveStateDir(workDir)
	store := runner.NewStateStore(stateDir)

	checker := nextflow.NewCLIChecker(workDir)
	checker.Timeout = runNextflowTimeout

	deps := &runner.Deps{
		WorkDir:  workDir,
		StateDir: stateDir,
		Layout:   l,
		Syntax:   checker,
		Logger:   newLogger(cmd),
	}

	r := runner.NewRunner(registry, store, deps)
	r.SetOutput(cmd.OutOrStdout())
	return r, nil
}

func runChecks(cmd *cobra.Command, checkIDs []string) error {
	r, err := setupRunner(cmd)
	if err != nil {
		return err
	}
	return r.RunList(cmd.Context(), checkIDs)
}

var runListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		workDir, err := resolveWorkDir()
		if err != nil {
			return err
		}
		l, err := layout.Resolve(workDir)
		if err != nil {
			return err
		}
		registry, err := checks.Registry(workDir, l)
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(registry))
		for _, c := range registry {
			ids = append(ids, c.ID())
		}

		if runJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"checks": ids})
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

var runAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Run all checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := setupRunner(cmd)
		if err != nil {
			return err
		}
		return r.RunAll(cmd.Context())
	},
}

var runResumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Re-run the checks that failed last time",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := setupRunner(cmd)
		if err != nil {
			return err
		}
		return r.Resume(cmd.Context())
	},
}

var runResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear run state",
	RunE: func(cmd *cobra.Command, args []string) error {
		workDir, err := resolveWorkDir()
		if err != nil {
			return err
		}
		return runner.NewStateStore(resolveStateDir(workDir)).Reset()
	},
}

var runReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the last run's summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		workDir, err := resolveWorkDir()
		if err != nil {
			return err
		}
		store := runner.NewStateStore(resolveStateDir(workDir))

		last, err := store.ReadLastRun()
		if err != nil {
			return err
		}

		if runJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(last)
		}

		results, err := reports.Collect(store, last)
		if err != nil {
			return err
		}
		s := reports.Summary{Color: os.Getenv("NO_COLOR") == ""}
		fmt.Fprint(cmd.OutOrStdout(), s.Render(last, results))
		return nil
	},
}
