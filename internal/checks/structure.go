package checks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ovinelab/stagecheck/internal/runner"
)

// Structure verifies that every file the stage-1 pipeline needs is
// present in the checkout. Existence only, content is other checks' job.
type Structure struct {
	id string
}

func NewStructure() runner.Check {
	return &Structure{id: "structure:files"}
}

func (s *Structure) ID() string { return s.id }

func (s *Structure) Run(ctx context.Context, deps *runner.Deps) runner.CheckResult {
	var missing []string
	for _, rel := range deps.Layout.RequiredFiles {
		if _, err := os.Stat(filepath.Join(deps.WorkDir, rel)); err != nil {
			missing = append(missing, rel)
			continue
		}
		deps.Log().Debug("found required file", "path", rel)
	}

	if len(missing) > 0 {
		return runner.CheckResult{
			Check:    s.id,
			Status:   runner.StatusFail,
			ExitCode: 1,
			Note:     "missing files: " + strings.Join(missing, ", "),
		}
	}

	return runner.CheckResult{
		Check:  s.id,
		Status: runner.StatusPass,
		Note:   fmt.Sprintf("all %d required files present", len(deps.Layout.RequiredFiles)),
	}
}
