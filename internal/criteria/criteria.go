package criteria

import (
	"encoding/json"
	"fmt"
	"os"
)

// Document is the stage-1 validation-criteria contract consumed by the
// downstream download and QC stages. Every value is a constant: the
// harness publishes thresholds, it never computes them.
type Document struct {
	Stage1 Criteria `json:"stage1_validation_criteria"`
}

type Criteria struct {
	Download     DownloadCriteria `json:"download_validation"`
	Genome       GenomeCriteria   `json:"genome_validation"`
	QualityGates QualityGates     `json:"quality_gates"`
}

type DownloadCriteria struct {
	SuccessRate     string `json:"success_rate"`
	GenomeSizeRange string `json:"genome_size_range"`
	MaxDownloadTime string `json:"max_download_time"`
	RetryAttempts   int    `json:"retry_attempts"`
}

type GenomeCriteria struct {
	GCContentRange    string `json:"gc_content_range"`
	NContentMax       string `json:"n_content_max"`
	MaxContigs        int    `json:"max_contigs"`
	BuscoCompleteness string `json:"busco_completeness"`
}

type QualityGates struct {
	AllDownloadsSuccessful string `json:"all_downloads_successful"`
	AllValidationsPassed   string `json:"all_validations_passed"`
	MetadataCompleteness   string `json:"metadata_completeness"`
	NoDuplicateSamples     string `json:"no_duplicate_samples"`
}

// Stage1 returns the published criteria for the data-acquisition stage.
func Stage1() Document {
	return Document{Stage1: Criteria{
		Download: DownloadCriteria{
			SuccessRate:     ">95%",
			GenomeSizeRange: "2.4-3.2 Gb",
			MaxDownloadTime: "30 minutes per genome",
			RetryAttempts:   3,
		},
		Genome: GenomeCriteria{
			GCContentRange:    "35-50%",
			NContentMax:       "5%",
			MaxContigs:        50000,
			BuscoCompleteness: ">85% (if available)",
		},
		QualityGates: QualityGates{
			AllDownloadsSuccessful: "required",
			AllValidationsPassed:   "required",
			MetadataCompleteness:   ">90%",
			NoDuplicateSamples:     "required",
		},
	}}
}

// Write emits the criteria document as indented JSON at path.
func Write(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating criteria file: %w", err)
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false) // thresholds like ">95%" stay readable
	return enc.Encode(Stage1())
}
