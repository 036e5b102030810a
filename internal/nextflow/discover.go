package nextflow

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverModules lists the .nf module files directly under dir, sorted
// deterministically. A missing directory is not an error, there is simply
// nothing to check.
func DiscoverModules(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var modules []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".nf") {
			modules = append(modules, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(modules)
	return modules, nil
}

// ModuleName derives a check-friendly name from a module path:
// modules/local/download_genome.nf -> download_genome.
func ModuleName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".nf")
}
