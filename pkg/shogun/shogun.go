// Package shogun describes how SHOGUN is invoked: run parameters,
// argument vectors of its subcommands, names of files it produces,
// and the Profiler interface implemented in internal/ioshogun.
package shogun

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/gnames/gnshogun/pkg/artifact"
	"github.com/gnames/gnshogun/pkg/table"
)

// Aligner is the only alignment backend the wrapper supports.
const Aligner = "bowtie2"

// Files produced by SHOGUN inside the output directory.
const (
	AlignmentFile = "alignment.bowtie2.sam"
	TaxaTableFile = "taxatable.tsv"

	StrainTaxaFile     = "taxatable.strain.txt"
	StrainKEGGFile     = "taxatable.strain.kegg.txt"
	StrainModulesFile  = "taxatable.strain.kegg.modules.txt"
	StrainPathwaysFile = "taxatable.strain.kegg.pathways.txt"
)

// Profiler runs SHOGUN on loaded inputs and returns feature tables.
// Every call stages its own database directory and removes it before
// returning.
type Profiler interface {
	// Taxonomy aligns reads and assigns taxonomy, returning the taxa
	// table.
	Taxonomy(ctx context.Context, inp *artifact.Inputs, p Params) (*table.FeatureTable, error)

	// Pipeline runs the full SHOGUN pipeline and returns the taxonomic
	// and functional tables.
	Pipeline(ctx context.Context, inp *artifact.Inputs, p Params) (*Tables, error)
}

// Tables are the results of a full pipeline run.
type Tables struct {
	Taxa     *table.FeatureTable
	KEGG     *table.FeatureTable
	Modules  *table.FeatureTable
	Pathways *table.FeatureTable
}

// Named pairs a table with its output name.
type Named struct {
	Name  string
	Table *table.FeatureTable
}

// List returns tables with names used for output files.
func (t *Tables) List() []Named {
	return []Named{
		{"taxa", t.Taxa},
		{"kegg", t.KEGG},
		{"modules", t.Modules},
		{"pathways", t.Pathways},
	}
}

// AlignArgs returns arguments of `shogun align`.
func AlignArgs(query, dbDir, outDir string, p Params) []string {
	return []string{
		"align",
		"-i", query,
		"-d", dbDir,
		"-o", outDir,
		"-a", Aligner,
		"-x", formatFloat(p.TaxaCut),
		"-t", strconv.Itoa(p.Threads),
		"-p", formatFloat(p.PercentID),
	}
}

// AssignTaxonomyArgs returns arguments of `shogun assign_taxonomy`.
// The alignment is expected in dir, the taxa table is written there.
func AssignTaxonomyArgs(dir string) []string {
	return []string{
		"assign_taxonomy",
		"-i", filepath.Join(dir, AlignmentFile),
		"-d", dir,
		"-o", filepath.Join(dir, TaxaTableFile),
		"-a", Aligner,
	}
}

// PipelineArgs returns arguments of `shogun pipeline`.
func PipelineArgs(query, dbDir, outDir string, p Params) []string {
	res := AlignArgs(query, dbDir, outDir, p)
	res[0] = "pipeline"
	return res
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
