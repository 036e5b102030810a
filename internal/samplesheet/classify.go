package samplesheet

// Classification is the download-vs-local partition of a samplesheet.
// Both slices preserve the original row order.
type Classification struct {
	Download []Row
	Local    []Row
}

// Classify partitions rows by source. The predicates are evaluated
// independently: a row with both an accession and a fasta path lands in
// both sets, a row with neither lands in none. Classify only partitions;
// Consistent is how callers detect those degenerate rows.
func Classify(rows []Row) Classification {
	var c Classification
	for _, r := range rows {
		if r.Accession != "" {
			c.Download = append(c.Download, r)
		}
		if r.Fasta != "" {
			c.Local = append(c.Local, r)
		}
	}
	return c
}

// Consistent reports whether the partition covers each of total rows
// exactly once.
func (c Classification) Consistent(total int) bool {
	return len(c.Download)+len(c.Local) == total
}

// Overlap counts rows present in both sets, keyed by sample ID.
func (c Classification) Overlap() int {
	inDownload := make(map[string]bool, len(c.Download))
	for _, r := range c.Download {
		inDownload[r.Sample] = true
	}
	n := 0
	for _, r := range c.Local {
		if inDownload[r.Sample] {
			n++
		}
	}
	return n
}

// Unclassified counts rows of the original sequence that landed in
// neither set.
func (c Classification) Unclassified(total int) int {
	n := total - len(c.Download) - len(c.Local) + c.Overlap()
	if n < 0 {
		return 0
	}
	return n
}
