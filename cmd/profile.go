package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnlib"
	"github.com/gnames/gnshogun/internal/ioartifact"
	"github.com/gnames/gnshogun/internal/iofs"
	"github.com/gnames/gnshogun/internal/ioledger"
	"github.com/gnames/gnshogun/internal/iorunner"
	"github.com/gnames/gnshogun/internal/ioshogun"
	"github.com/gnames/gnshogun/internal/iotable"
	"github.com/gnames/gnshogun/pkg/artifact"
	"github.com/gnames/gnshogun/pkg/config"
	"github.com/gnames/gnshogun/pkg/shogun"
	"github.com/gnames/gnsys"
	"github.com/spf13/cobra"
)

// Profiling modes.
const (
	modeTaxonomy = "taxonomy"
	modePipeline = "pipeline"
)

// profile runs one profiling mode from the command line. It validates
// parameters and inputs, runs SHOGUN, writes result tables and records
// the run in the ledger.
func profile(
	cmd *cobra.Command,
	mode string,
	f *profileFlags,
	runner iorunner.Runner,
) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg.Update(f.options(cmd))

	params := f.params(cmd, cfg)
	if err := params.Validate(); err != nil {
		return err
	}

	inp, err := ioartifact.LoadInputs(f.paths())
	if err != nil {
		return err
	}
	reportInputs(inp)

	rec := iorunner.NewRecorder(runner)
	run := ioledger.NewRun(mode)
	run.Params = params
	run.Query = inp.Query.Path
	run.IndexName = inp.Index.Name()

	prof := ioshogun.New(cfg, rec)
	run.Outputs, err = execute(ctx, mode, prof, inp, params, f.outDir, cfg.Output.Format)
	run.Commands = rec.Lines()
	run.Finish(err)
	record(ctx, cfg, run)
	if err != nil {
		return err
	}

	msg := gnlib.FormatMessage(fmt.Sprintf(`
<em>Profiling is done.</em>
Result tables:
  %s
`, strings.Join(run.Outputs, "\n  ")), nil)
	fmt.Println(msg)
	return nil
}

func execute(
	ctx context.Context,
	mode string,
	prof shogun.Profiler,
	inp *artifact.Inputs,
	params shogun.Params,
	outDir string,
	format string,
) ([]string, error) {
	var tables []shogun.Named
	switch mode {
	case modeTaxonomy:
		ft, err := prof.Taxonomy(ctx, inp, params)
		if err != nil {
			return nil, err
		}
		tables = []shogun.Named{{Name: "taxa", Table: ft}}
	case modePipeline:
		res, err := prof.Pipeline(ctx, inp, params)
		if err != nil {
			return nil, err
		}
		tables = res.List()
	default:
		return nil, fmt.Errorf("unknown profiling mode %q", mode)
	}
	return writeTables(outDir, format, tables)
}

// writeTables saves tables to outDir, one file per table.
func writeTables(outDir, format string, tables []shogun.Named) ([]string, error) {
	if err := gnsys.MakeDir(outDir); err != nil {
		return nil, iofs.CreateDirError(outDir, err)
	}

	res := make([]string, 0, len(tables))
	for _, v := range tables {
		path := filepath.Join(outDir, v.Name+iotable.Extension(format))
		if err := iotable.Write(path, v.Table, format); err != nil {
			return res, err
		}
		res = append(res, path)
	}
	return res, nil
}

func reportInputs(inp *artifact.Inputs) {
	gn.Info(
		"Query: <em>%s</em> reads (%s) from <em>%s</em> samples",
		humanize.Comma(int64(inp.Query.Count)),
		humanize.Comma(inp.Query.Residues)+" bp",
		humanize.Comma(int64(len(inp.Query.SampleIDs))),
	)
	gn.Info(
		"Reference: <em>%s</em> sequences, <em>%s</em> taxa, index <em>%s</em>",
		humanize.Comma(int64(inp.RefSeqs.Count)),
		humanize.Comma(int64(len(inp.Taxonomy.Records))),
		inp.Index.Name(),
	)
}

// record saves the run to the ledger. Ledger problems do not fail the
// run.
func record(ctx context.Context, c *config.Config, run *ioledger.Run) {
	if !c.Ledger {
		return
	}
	l, err := ioledger.Open(config.LedgerFilePath(c.HomeDir))
	if err != nil {
		gn.PrintErrorMessage(err)
		return
	}
	defer l.Close()

	if err = l.Record(context.WithoutCancel(ctx), run); err != nil {
		gn.PrintErrorMessage(err)
	}
}
