package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Column names every catalog file must carry.
const (
	ColSample           = "sample"
	ColAccession        = "accession"
	ColBreed            = "breed"
	ColPopulation       = "population"
	ColGeographicOrigin = "geographic_origin"
)

// RequiredColumns returns the catalog schema in canonical order.
func RequiredColumns() []string {
	return []string{ColSample, ColAccession, ColBreed, ColPopulation, ColGeographicOrigin}
}

// Row is one genome metadata record from the catalog.
type Row struct {
	Sample           string
	Accession        string
	Breed            string
	Population       string
	GeographicOrigin string
}

// Table is a parsed catalog: the file's actual header plus its rows.
// The raw header is kept so schema validation can report exactly which
// required columns the file is missing.
type Table struct {
	Columns []string
	Rows    []Row
}

// Load parses a catalog CSV file. Rows are mapped into Row structs by
// header position; columns absent from the file map to the empty string.
// Load does not validate the schema, that is Validate's job.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("opening catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows, validation reports on content

	records, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	if len(records) == 0 {
		return Table{}, nil
	}

	header := records[0]
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[col] = i
	}

	field := func(record []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	t := Table{Columns: header}
	for _, rec := range records[1:] {
		t.Rows = append(t.Rows, Row{
			Sample:           field(rec, ColSample),
			Accession:        field(rec, ColAccession),
			Breed:            field(rec, ColBreed),
			Population:       field(rec, ColPopulation),
			GeographicOrigin: field(rec, ColGeographicOrigin),
		})
	}
	return t, nil
}
