package runner

import (
	"context"
	"io"
	"log/slog"

	"github.com/ovinelab/stagecheck/internal/layout"
	"github.com/ovinelab/stagecheck/internal/nextflow"
)

// Deps carries everything a check needs to run against one pipeline
// checkout. Checks must not reach outside of it.
type Deps struct {
	// WorkDir is the root of the pipeline checkout under test.
	WorkDir string

	// StateDir is the harness scratch/state directory; checks may write
	// ephemeral fixtures there.
	StateDir string

	Layout layout.Layout

	// Syntax validates workflow module files. Nil means syntax checks
	// report skip.
	Syntax nextflow.SyntaxChecker

	Logger *slog.Logger
}

// Log returns the configured logger, or a no-op discard logger.
func (d *Deps) Log() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Check is one unit of stage-1 validation.
type Check interface {
	// ID returns the unique identifier (e.g. "catalog:validate").
	ID() string

	// Run executes the check. Failures are reported in the result,
	// never panicked or returned past the check boundary.
	Run(ctx context.Context, deps *Deps) CheckResult
}
