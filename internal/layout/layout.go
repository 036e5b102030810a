package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OverrideFile is the optional per-checkout layout override.
const OverrideFile = ".stagecheck.yaml"

// Layout describes where a stage-1 pipeline checkout keeps the artifacts
// the harness inspects. Paths are relative to the work dir.
type Layout struct {
	// RequiredFiles must all exist for the structure check to pass.
	RequiredFiles []string `yaml:"required_files"`

	// ModulesDir holds the workflow module files checked for syntax.
	ModulesDir string `yaml:"modules_dir"`

	// CatalogPath is the genome metadata catalog CSV.
	CatalogPath string `yaml:"catalog_path"`

	// CriteriaPath is where the validation-criteria document is written.
	CriteriaPath string `yaml:"criteria_path"`
}

// Default returns the canonical sheep pangenome pipeline layout.
func Default() Layout {
	return Layout{
		RequiredFiles: []string{
			"modules/local/download_genome.nf",
			"modules/local/validate_genome.nf",
			"subworkflows/local/input_check.nf",
			"conf/modules.config",
			"assets/sheep_genomes_catalog.csv",
		},
		ModulesDir:   "modules/local",
		CatalogPath:  "assets/sheep_genomes_catalog.csv",
		CriteriaPath: "stage1_validation_criteria.json",
	}
}

// Resolve returns the layout for workDir: the default, overlaid with any
// fields set in .stagecheck.yaml at the work dir root.
func Resolve(workDir string) (Layout, error) {
	l := Default()

	path := filepath.Join(workDir, OverrideFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return l, nil
	}
	if err != nil {
		return Layout{}, fmt.Errorf("reading %s: %w", OverrideFile, err)
	}

	var override Layout
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Layout{}, fmt.Errorf("parsing %s: %w", OverrideFile, err)
	}

	if len(override.RequiredFiles) > 0 {
		l.RequiredFiles = override.RequiredFiles
	}
	if override.ModulesDir != "" {
		l.ModulesDir = override.ModulesDir
	}
	if override.CatalogPath != "" {
		l.CatalogPath = override.CatalogPath
	}
	if override.CriteriaPath != "" {
		l.CriteriaPath = override.CriteriaPath
	}
	return l, nil
}
