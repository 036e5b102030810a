package catalog

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns absent from a catalog header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing columns in catalog: %s", strings.Join(e.Missing, ", "))
}

// DuplicateKeyError reports repeated values in a column that must be unique.
type DuplicateKeyError struct {
	Column string
	Values []string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate %s values in catalog: %s", e.Column, strings.Join(e.Values, ", "))
}

// Stats summarizes a catalog that passed validation.
type Stats struct {
	Genomes     int `json:"genomes"`
	Breeds      int `json:"breeds"`
	Populations int `json:"populations"`
}

// Result is the outcome of validating one catalog table.
type Result struct {
	OK     bool
	Stats  Stats
	Errors []error
}

// Validate checks a catalog table against the schema and uniqueness rules.
// Schema failures short-circuit the duplicate checks (a missing key column
// makes them meaningless), but the sample and accession checks are always
// evaluated together so one pass reports both.
func Validate(t Table) Result {
	if missing := missingColumns(t.Columns); len(missing) > 0 {
		return Result{Errors: []error{&SchemaError{Missing: missing}}}
	}

	var errs []error
	if dups := duplicates(t.Rows, func(r Row) string { return r.Sample }); len(dups) > 0 {
		errs = append(errs, &DuplicateKeyError{Column: ColSample, Values: dups})
	}
	if dups := duplicates(t.Rows, func(r Row) string { return r.Accession }); len(dups) > 0 {
		errs = append(errs, &DuplicateKeyError{Column: ColAccession, Values: dups})
	}
	if len(errs) > 0 {
		return Result{Errors: errs}
	}

	return Result{
		OK: true,
		Stats: Stats{
			Genomes:     len(t.Rows),
			Breeds:      distinct(t.Rows, func(r Row) string { return r.Breed }),
			Populations: distinct(t.Rows, func(r Row) string { return r.Population }),
		},
	}
}

// missingColumns returns required columns absent from actual, in canonical order.
func missingColumns(actual []string) []string {
	have := make(map[string]bool, len(actual))
	for _, col := range actual {
		have[col] = true
	}
	var missing []string
	for _, col := range RequiredColumns() {
		if !have[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// duplicates returns values seen more than once, in first-repeat order.
// Empty values are treated as absent and never count as duplicates.
func duplicates(rows []Row, key func(Row) string) []string {
	seen := make(map[string]int, len(rows))
	var dups []string
	for _, r := range rows {
		v := key(r)
		if v == "" {
			continue
		}
		seen[v]++
		if seen[v] == 2 {
			dups = append(dups, v)
		}
	}
	return dups
}

func distinct(rows []Row, key func(Row) string) int {
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		if v := key(r); v != "" {
			seen[v] = true
		}
	}
	return len(seen)
}
