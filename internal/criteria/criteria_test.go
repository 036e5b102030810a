package criteria

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_Golden(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stage1_validation_criteria.json")
	require.NoError(t, Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "stage1_criteria", data)
}

func TestStage1_Constants(t *testing.T) {
	doc := Stage1()
	assert.Equal(t, ">95%", doc.Stage1.Download.SuccessRate)
	assert.Equal(t, 3, doc.Stage1.Download.RetryAttempts)
	assert.Equal(t, 50000, doc.Stage1.Genome.MaxContigs)
	assert.Equal(t, "required", doc.Stage1.QualityGates.NoDuplicateSamples)
}

func TestWrite_BadPath(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "criteria.json"))
	require.Error(t, err)
}
