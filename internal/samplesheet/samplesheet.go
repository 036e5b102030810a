package samplesheet

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Row is one samplesheet record. Accession set means the genome is fetched
// from a remote archive; Fasta set means it is already on disk. The two are
// independent fields, classification never forces them to be exclusive.
type Row struct {
	Sample           string
	Accession        string
	Breed            string
	Population       string
	GeographicOrigin string
	Fasta            string
}

// Load parses a samplesheet CSV file. A sheet without a fasta column is
// normal (download-only runs), the field simply stays empty for every row.
func Load(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening samplesheet: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing samplesheet %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	idx := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		idx[col] = i
	}
	field := func(record []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []Row
	for _, rec := range records[1:] {
		rows = append(rows, Row{
			Sample:           field(rec, "sample"),
			Accession:        field(rec, "accession"),
			Breed:            field(rec, "breed"),
			Population:       field(rec, "population"),
			GeographicOrigin: field(rec, "geographic_origin"),
			Fasta:            field(rec, "fasta"),
		})
	}
	return rows, nil
}

// testRows is the canonical toy samplesheet used to exercise the
// input-check branching logic: three download-only genomes.
var testRows = []Row{
	{Sample: "rambouillet_test", Accession: "GCF_016772045.1", Breed: "Rambouillet", Population: "European", GeographicOrigin: "United_States"},
	{Sample: "texel_test", Accession: "GCF_000298735.2", Breed: "Texel", Population: "European", GeographicOrigin: "Netherlands"},
	{Sample: "hu_test", Accession: "GCA_001704415.1", Breed: "Hu", Population: "Asian", GeographicOrigin: "China"},
}

// WriteTest writes the toy samplesheet to path and returns its rows.
func WriteTest(path string) ([]Row, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating test samplesheet: %w", err)
	}

	w := csv.NewWriter(f)
	_ = w.Write([]string{"sample", "accession", "breed", "population", "geographic_origin"})
	for _, r := range testRows {
		_ = w.Write([]string{r.Sample, r.Accession, r.Breed, r.Population, r.GeographicOrigin})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("writing test samplesheet: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return testRows, nil
}
