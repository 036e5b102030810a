package checks

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ovinelab/stagecheck/internal/catalog"
	"github.com/ovinelab/stagecheck/internal/runner"
)

// Catalog validates the genome metadata catalog: schema, uniqueness of
// sample IDs and accessions, and summary stats on success.
type Catalog struct {
	id string
}

func NewCatalog() runner.Check {
	return &Catalog{id: "catalog:validate"}
}

func (c *Catalog) ID() string { return c.id }

func (c *Catalog) Run(ctx context.Context, deps *runner.Deps) runner.CheckResult {
	path := filepath.Join(deps.WorkDir, deps.Layout.CatalogPath)

	tbl, err := catalog.Load(path)
	if err != nil {
		return runner.CheckResult{
			Check:    c.id,
			Status:   runner.StatusFail,
			ExitCode: 1,
			Note:     err.Error(),
		}
	}

	res := catalog.Validate(tbl)
	if !res.OK {
		msgs := make([]string, 0, len(res.Errors))
		for _, e := range res.Errors {
			msgs = append(msgs, e.Error())
		}
		return runner.CheckResult{
			Check:    c.id,
			Status:   runner.StatusFail,
			ExitCode: 1,
			Note:     strings.Join(msgs, "; "),
		}
	}

	return runner.CheckResult{
		Check:  c.id,
		Status: runner.StatusPass,
		Note: fmt.Sprintf("%d genomes, %d breeds, %d populations",
			res.Stats.Genomes, res.Stats.Breeds, res.Stats.Populations),
	}
}
