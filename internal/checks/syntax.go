package checks

import (
	"context"
	"path/filepath"

	"github.com/ovinelab/stagecheck/internal/nextflow"
	"github.com/ovinelab/stagecheck/internal/runner"
)

// Syntax validates one workflow module file through the configured
// syntax checker. Tool-unavailable and timeout outcomes are skips, not
// failures (spec'd tri-state accounting).
type Syntax struct {
	id         string
	modulePath string
}

// NewSyntax creates a check for the module at modulePath (relative to
// the work dir).
func NewSyntax(modulePath string) runner.Check {
	return &Syntax{
		id:         "syntax:" + nextflow.ModuleName(modulePath),
		modulePath: modulePath,
	}
}

func (s *Syntax) ID() string { return s.id }

func (s *Syntax) Run(ctx context.Context, deps *runner.Deps) runner.CheckResult {
	if deps.Syntax == nil {
		return runner.CheckResult{
			Check:  s.id,
			Status: runner.StatusSkip,
			Note:   "no syntax checker configured",
		}
	}

	out := deps.Syntax.Check(ctx, filepath.Join(deps.WorkDir, s.modulePath))
	switch out.Kind {
	case nextflow.OutcomeValid:
		return runner.CheckResult{Check: s.id, Status: runner.StatusPass}
	case nextflow.OutcomeSkipped:
		return runner.CheckResult{Check: s.id, Status: runner.StatusSkip, Note: out.Diagnostic}
	default:
		return runner.CheckResult{
			Check:    s.id,
			Status:   runner.StatusFail,
			ExitCode: 1,
			Note:     out.Diagnostic,
		}
	}
}
