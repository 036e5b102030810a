package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCLICommandRun_Help(t *testing.T) {
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"run", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("run command failed: %v", err)
	}

	out := b.String()
	if !strings.Contains(out, "Usage:") {
		t.Errorf("expected usage info in run help")
	}
	for _, sub := range []string{"all", "list", "resume", "report", "reset"} {
		if !strings.Contains(out, sub) {
			t.Errorf("expected subcommand %q in run help", sub)
		}
	}
}

// scaffoldCheckout writes a complete stage-1 checkout into a temp dir.
func scaffoldCheckout(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"nextflow.config":                   "params {}\n",
		"modules/local/download_genome.nf":  "process DOWNLOAD_GENOME {}\n",
		"modules/local/validate_genome.nf":  "process VALIDATE_GENOME {}\n",
		"subworkflows/local/input_check.nf": "workflow INPUT_CHECK {}\n",
		"conf/modules.config":               "process {}\n",
		"assets/sheep_genomes_catalog.csv": "sample,accession,breed,population,geographic_origin\n" +
			"texel_test,GCF_000298735.2,Texel,European,Netherlands\n",
	}
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestCLICommandRun_List(t *testing.T) {
	dir := scaffoldCheckout(t)

	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"run", "list", "--work-dir", dir, "--json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("run list failed: %v", err)
	}

	var got struct {
		Checks []string `json:"checks"`
	}
	if err := json.Unmarshal(b.Bytes(), &got); err != nil {
		t.Fatalf("run list --json produced invalid JSON: %v", err)
	}

	want := []string{
		"structure:files",
		"catalog:validate",
		"samplesheet:classify",
		"syntax:download_genome",
		"syntax:validate_genome",
	}
	if len(got.Checks) != len(want) {
		t.Fatalf("expected %d checks, got %v", len(want), got.Checks)
	}
	for i, id := range want {
		if got.Checks[i] != id {
			t.Errorf("check %d: expected %q, got %q", i, id, got.Checks[i])
		}
	}
}

func TestCLICommandCriteria(t *testing.T) {
	dir := scaffoldCheckout(t)
	out := filepath.Join(dir, "criteria.json")

	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"criteria", "--output", out})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("criteria command failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("criteria file not written: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("criteria file is invalid JSON: %v", err)
	}
	if _, ok := doc["stage1_validation_criteria"]; !ok {
		t.Errorf("expected stage1_validation_criteria key in %s", out)
	}
}
