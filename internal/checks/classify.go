package checks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ovinelab/stagecheck/internal/runner"
	"github.com/ovinelab/stagecheck/internal/samplesheet"
)

// Classify exercises the input-check branching logic on the toy
// samplesheet: every row must land in exactly one of the download/local
// sets. The classifier itself never rejects a row satisfying both or
// neither predicate; this check is what surfaces such rows.
type Classify struct {
	id string
}

func NewClassify() runner.Check {
	return &Classify{id: "samplesheet:classify"}
}

func (c *Classify) ID() string { return c.id }

func (c *Classify) Run(ctx context.Context, deps *runner.Deps) runner.CheckResult {
	fail := func(format string, args ...any) runner.CheckResult {
		return runner.CheckResult{
			Check:    c.id,
			Status:   runner.StatusFail,
			ExitCode: 1,
			Note:     fmt.Sprintf(format, args...),
		}
	}

	if err := os.MkdirAll(deps.StateDir, 0o755); err != nil {
		return fail("preparing state dir: %v", err)
	}
	sheetPath := filepath.Join(deps.StateDir, "test_samplesheet.csv")
	if _, err := samplesheet.WriteTest(sheetPath); err != nil {
		return fail("%v", err)
	}

	rows, err := samplesheet.Load(sheetPath)
	if err != nil {
		return fail("%v", err)
	}

	cls := samplesheet.Classify(rows)
	deps.Log().Debug("classified samplesheet",
		"download", len(cls.Download), "local", len(cls.Local), "total", len(rows))

	if !cls.Consistent(len(rows)) {
		return fail("classification mismatch: %d download + %d local != %d rows (%d in both sets, %d in neither)",
			len(cls.Download), len(cls.Local), len(rows), cls.Overlap(), cls.Unclassified(len(rows)))
	}

	return runner.CheckResult{
		Check:  c.id,
		Status: runner.StatusPass,
		Note:   fmt.Sprintf("%d download, %d local", len(cls.Download), len(cls.Local)),
	}
}
