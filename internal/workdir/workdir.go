package workdir

import (
	"fmt"
	"os"
	"path/filepath"
)

// markers identify the root of a pipeline checkout. Any one suffices.
var markers = []string{
	"nextflow.config",
	"main.nf",
	filepath.Join("assets", "sheep_genomes_catalog.csv"),
}

// Find walks up from start looking for a pipeline checkout root.
// It returns an absolute path, or an error if no marker is found before
// the filesystem root.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		for _, m := range markers {
			if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no pipeline checkout found above %s (looked for nextflow.config, main.nf or the genome catalog)", start)
		}
		dir = parent
	}
}
