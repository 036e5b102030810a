package checks

import (
	"path/filepath"

	"github.com/ovinelab/stagecheck/internal/layout"
	"github.com/ovinelab/stagecheck/internal/nextflow"
	"github.com/ovinelab/stagecheck/internal/runner"
)

// Registry assembles the ordered check list for one pipeline checkout:
// the fixed structural checks first, then one syntax check per module
// file discovered under the layout's modules directory.
func Registry(workDir string, l layout.Layout) ([]runner.Check, error) {
	checks := []runner.Check{
		NewStructure(),
		NewCatalog(),
		NewClassify(),
	}

	modulesDir := filepath.Join(workDir, l.ModulesDir)
	modules, err := nextflow.DiscoverModules(modulesDir)
	if err != nil {
		return nil, err
	}
	for _, m := range modules {
		rel, err := filepath.Rel(workDir, m)
		if err != nil {
			rel = m
		}
		checks = append(checks, NewSyntax(rel))
	}
	return checks, nil
}
