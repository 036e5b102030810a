package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(sample, accession string) Row {
	return Row{Sample: sample, Accession: accession, Breed: "Texel", Population: "European", GeographicOrigin: "Netherlands"}
}

func TestValidate_OK(t *testing.T) {
	tbl := Table{
		Columns: RequiredColumns(),
		Rows: []Row{
			{Sample: "rambouillet_test", Accession: "GCF_016772045.1", Breed: "Rambouillet", Population: "European", GeographicOrigin: "United_States"},
			{Sample: "texel_test", Accession: "GCF_000298735.2", Breed: "Texel", Population: "European", GeographicOrigin: "Netherlands"},
			{Sample: "hu_test", Accession: "GCA_001704415.1", Breed: "Hu", Population: "Asian", GeographicOrigin: "China"},
		},
	}

	res := Validate(tbl)
	require.True(t, res.OK)
	assert.Empty(t, res.Errors)
	assert.Equal(t, 3, res.Stats.Genomes)
	assert.Equal(t, 3, res.Stats.Breeds)
	assert.Equal(t, 2, res.Stats.Populations)
}

func TestValidate_MissingColumns(t *testing.T) {
	tbl := Table{
		Columns: []string{ColSample, ColAccession, ColBreed},
		Rows:    []Row{row("a", "GCF_1")},
	}

	res := Validate(tbl)
	require.False(t, res.OK)
	require.Len(t, res.Errors, 1)

	var schemaErr *SchemaError
	require.ErrorAs(t, res.Errors[0], &schemaErr)
	assert.Equal(t, []string{ColPopulation, ColGeographicOrigin}, schemaErr.Missing)
}

func TestValidate_DuplicateSample(t *testing.T) {
	tbl := Table{
		Columns: RequiredColumns(),
		Rows:    []Row{row("x", "GCF_1"), row("x", "GCF_2")},
	}

	res := Validate(tbl)
	require.False(t, res.OK)
	require.Len(t, res.Errors, 1)

	var dupErr *DuplicateKeyError
	require.ErrorAs(t, res.Errors[0], &dupErr)
	assert.Equal(t, ColSample, dupErr.Column)
	assert.Equal(t, []string{"x"}, dupErr.Values)
	assert.Contains(t, dupErr.Error(), "duplicate sample")
}

func TestValidate_ReportsBothDuplicateColumns(t *testing.T) {
	tbl := Table{
		Columns: RequiredColumns(),
		Rows:    []Row{row("x", "GCF_1"), row("x", "GCF_1")},
	}

	res := Validate(tbl)
	require.False(t, res.OK)
	require.Len(t, res.Errors, 2)

	columns := make([]string, 0, 2)
	for _, err := range res.Errors {
		var dupErr *DuplicateKeyError
		require.ErrorAs(t, err, &dupErr)
		columns = append(columns, dupErr.Column)
	}
	assert.Equal(t, []string{ColSample, ColAccession}, columns)
}

func TestValidate_DuplicateAccessionOnly(t *testing.T) {
	tbl := Table{
		Columns: RequiredColumns(),
		Rows:    []Row{row("a", "GCF_1"), row("b", "GCF_1")},
	}

	res := Validate(tbl)
	require.False(t, res.OK)
	require.Len(t, res.Errors, 1)

	var dupErr *DuplicateKeyError
	require.ErrorAs(t, res.Errors[0], &dupErr)
	assert.Equal(t, ColAccession, dupErr.Column)
}

func TestValidate_EmptyAccessionsNotDuplicates(t *testing.T) {
	tbl := Table{
		Columns: RequiredColumns(),
		Rows:    []Row{row("a", ""), row("b", "")},
	}

	res := Validate(tbl)
	assert.True(t, res.OK)
	assert.Equal(t, 2, res.Stats.Genomes)
}

func TestValidate_EmptyTable(t *testing.T) {
	res := Validate(Table{Columns: RequiredColumns()})
	require.True(t, res.OK)
	assert.Zero(t, res.Stats.Genomes)
	assert.Zero(t, res.Stats.Breeds)
	assert.Zero(t, res.Stats.Populations)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.csv")
	content := "sample,accession,breed,population,geographic_origin\n" +
		"texel_test,GCF_000298735.2,Texel,European,Netherlands\n" +
		"hu_test,GCA_001704415.1,Hu,Asian,China\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, RequiredColumns(), tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "texel_test", tbl.Rows[0].Sample)
	assert.Equal(t, "GCA_001704415.1", tbl.Rows[1].Accession)
	assert.Equal(t, "Asian", tbl.Rows[1].Population)
}

func TestLoad_MissingColumnsSurviveToValidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.csv")
	content := "sample,accession,breed\nx,GCF_1,Texel\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tbl, err := Load(path)
	require.NoError(t, err)

	res := Validate(tbl)
	require.False(t, res.OK)
	var schemaErr *SchemaError
	require.ErrorAs(t, res.Errors[0], &schemaErr)
	assert.Equal(t, []string{ColPopulation, ColGeographicOrigin}, schemaErr.Missing)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
