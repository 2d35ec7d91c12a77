package cmd

import (
	"github.com/gnames/gnshogun/internal/ioartifact"
	"github.com/gnames/gnshogun/pkg/config"
	"github.com/gnames/gnshogun/pkg/shogun"
	"github.com/spf13/cobra"
)

// profileFlags are shared by taxonomy and pipeline commands.
type profileFlags struct {
	query     string
	refseqs   string
	taxonomy  string
	indexDir  string
	outDir    string
	taxacut   float64
	threads   int
	percentID float64
	format    string
	keep      bool
	progress  bool
}

func addProfileFlags(cmd *cobra.Command, f *profileFlags) {
	def := shogun.DefaultParams()
	fs := cmd.Flags()

	fs.StringVarP(&f.query, "query", "q", "",
		"FASTA file with reads, read IDs are <sample>_<n>")
	fs.StringVarP(&f.refseqs, "refseqs", "r", "",
		"FASTA file with reference genomes")
	fs.StringVarP(&f.taxonomy, "taxonomy", "t", "",
		"tab-separated file with reference IDs and lineages")
	fs.StringVarP(&f.indexDir, "index", "i", "",
		"directory with bowtie2 index of reference genomes")
	fs.StringVarP(&f.outDir, "output", "o", "",
		"directory for result tables")
	fs.Float64Var(&f.taxacut, "taxacut", def.TaxaCut,
		"fraction of hits that must agree on a taxon, (0, 1]")
	fs.IntVar(&f.threads, "threads", def.Threads,
		"number of threads SHOGUN uses")
	fs.Float64Var(&f.percentID, "percent-id", def.PercentID,
		"minimal percent identity of an alignment, [0, 1]")
	fs.StringVarP(&f.format, "format", "f", "",
		"format of result tables: biom or tsv")
	fs.BoolVar(&f.keep, "keep-staging", false,
		"keep the temporary SHOGUN database for debugging")
	fs.BoolVar(&f.progress, "progress", false,
		"show progress while copying reference data")

	for _, v := range []string{"query", "refseqs", "taxonomy", "index", "output"} {
		_ = cmd.MarkFlagRequired(v)
	}
}

// paths returns input locations.
func (f *profileFlags) paths() ioartifact.Paths {
	return ioartifact.Paths{
		Query:    f.query,
		RefSeqs:  f.refseqs,
		Taxonomy: f.taxonomy,
		IndexDir: f.indexDir,
	}
}

// options converts explicitly set runtime flags to config options.
func (f *profileFlags) options(cmd *cobra.Command) []config.Option {
	var res []config.Option
	fs := cmd.Flags()
	if fs.Changed("format") {
		res = append(res, config.OptOutputFormat(f.format))
	}
	if fs.Changed("keep-staging") {
		res = append(res, config.OptKeepStaging(f.keep))
	}
	if fs.Changed("progress") {
		res = append(res, config.OptWithProgress(f.progress))
	}
	return res
}

// params takes SHOGUN parameters from configuration and overrides
// them with explicitly set flags. Values are not validated here.
func (f *profileFlags) params(cmd *cobra.Command, c *config.Config) shogun.Params {
	res := shogun.Params{
		TaxaCut:   c.Shogun.TaxaCut,
		Threads:   c.Shogun.Threads,
		PercentID: c.Shogun.PercentID,
	}
	fs := cmd.Flags()
	if fs.Changed("taxacut") {
		res.TaxaCut = f.taxacut
	}
	if fs.Changed("threads") {
		res.Threads = f.threads
	}
	if fs.Changed("percent-id") {
		res.PercentID = f.percentID
	}
	return res
}
