// Package artifact defines typed inputs of SHOGUN runs.
//
// Artifacts are validated when they are loaded (see ioartifact), so
// code that receives them can rely on well-formed content.
package artifact

import (
	"strings"

	"github.com/gnames/gnshogun/pkg/bt2"
)

// Sequences is a validated DNA FASTA file.
type Sequences struct {
	// Path is the absolute path to the FASTA file.
	Path string
	// Count is the number of records in the file.
	Count int
	// Residues is the total length of all sequences.
	Residues int64
	// SampleIDs are unique sample identifiers derived from record names,
	// in order of first appearance.
	SampleIDs []string
}

// TaxonRecord links a reference sequence ID to its lineage.
type TaxonRecord struct {
	// ID is the identifier of a reference sequence.
	ID string
	// Lineage is a taxonomy string, for example
	// "k__Bacteria; p__Proteobacteria; ...". It is opaque to gnshogun.
	Lineage string
}

// Taxonomy is a validated reference taxonomy table.
type Taxonomy struct {
	// Path is the absolute path to the source file.
	Path string
	// Records keep the order of the source file.
	Records []TaxonRecord
}

// Inputs contains everything a SHOGUN run needs.
type Inputs struct {
	// Query are the reads to profile.
	Query *Sequences
	// RefSeqs are the source sequences of the database.
	RefSeqs *Sequences
	// Taxonomy assigns lineages to RefSeqs.
	Taxonomy *Taxonomy
	// Index is a bowtie2 index built from RefSeqs.
	Index *bt2.Index
}

// SampleID extracts the sample from a read name. SHOGUN expects reads
// named as "<sample>_<read number>", everything before the last
// underscore is the sample. A name without underscore is a sample
// by itself.
func SampleID(readName string) string {
	if i := strings.LastIndexByte(readName, '_'); i > 0 {
		return readName[:i]
	}
	return readName
}
