// Package ioshogun implements the Profiler interface by running SHOGUN
// on a staged database directory.
// This is an impure package that writes temporary files and spawns
// SHOGUN processes.
package ioshogun

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnshogun/internal/iorunner"
	"github.com/gnames/gnshogun/internal/iostage"
	"github.com/gnames/gnshogun/internal/iotable"
	"github.com/gnames/gnshogun/pkg/artifact"
	"github.com/gnames/gnshogun/pkg/config"
	"github.com/gnames/gnshogun/pkg/shogun"
	"github.com/gnames/gnshogun/pkg/table"
)

// profiler implements the Profiler interface.
type profiler struct {
	cfg    *config.Config
	runner iorunner.Runner
}

// New creates a new Profiler. SHOGUN is called as cfg.Shogun.Path
// through runner.
func New(cfg *config.Config, runner iorunner.Runner) shogun.Profiler {
	return &profiler{cfg: cfg, runner: runner}
}

// Taxonomy aligns the query against the staged index and assigns
// taxonomy to the alignment.
func (p *profiler) Taxonomy(
	ctx context.Context,
	inp *artifact.Inputs,
	params shogun.Params,
) (ft *table.FeatureTable, err error) {
	start := time.Now()
	slog.Info("Starting taxonomic profiling", "query", inp.Query.Path)

	dir, err := iostage.Stage(p.cfg, inp)
	if err != nil {
		return nil, err
	}
	defer closeStage(dir, &ft, &err)

	args := shogun.AlignArgs(inp.Query.Path, dir.Path, dir.Path, params)
	if err = p.runner.Run(ctx, p.cfg.Shogun.Path, args...); err != nil {
		return nil, err
	}

	args = shogun.AssignTaxonomyArgs(dir.Path)
	if err = p.runner.Run(ctx, p.cfg.Shogun.Path, args...); err != nil {
		return nil, err
	}

	ft, err = iotable.ReadTSV(dir.File(shogun.TaxaTableFile))
	if err != nil {
		return nil, err
	}

	report("Taxonomic profiling", start, ft)
	return ft, nil
}

// Pipeline runs the whole SHOGUN pipeline and imports its four
// strain-level tables.
func (p *profiler) Pipeline(
	ctx context.Context,
	inp *artifact.Inputs,
	params shogun.Params,
) (res *shogun.Tables, err error) {
	start := time.Now()
	slog.Info("Starting functional profiling", "query", inp.Query.Path)

	dir, err := iostage.Stage(p.cfg, inp)
	if err != nil {
		return nil, err
	}
	defer closeStage(dir, &res, &err)

	args := shogun.PipelineArgs(inp.Query.Path, dir.Path, dir.Path, params)
	if err = p.runner.Run(ctx, p.cfg.Shogun.Path, args...); err != nil {
		return nil, err
	}

	res = &shogun.Tables{}
	imports := []struct {
		file string
		dst  **table.FeatureTable
	}{
		{shogun.StrainTaxaFile, &res.Taxa},
		{shogun.StrainKEGGFile, &res.KEGG},
		{shogun.StrainModulesFile, &res.Modules},
		{shogun.StrainPathwaysFile, &res.Pathways},
	}
	for _, v := range imports {
		*v.dst, err = iotable.ReadTSV(dir.File(v.file))
		if err != nil {
			return nil, err
		}
	}

	report("Functional profiling", start, res.Taxa)
	return res, nil
}

// closeStage removes the staging directory. Its error is returned only
// if the operation itself succeeded, and then res is reset to nil.
func closeStage[T any](dir *iostage.Dir, res **T, err *error) {
	cerr := dir.Close()
	if cerr == nil {
		return
	}
	if *err == nil {
		*res = nil
		*err = cerr
		return
	}
	slog.Error("Cannot remove staging directory", "path", dir.Path, "error", cerr)
}

func report(title string, start time.Time, ft *table.FeatureTable) {
	dur := gnfmt.TimeString(time.Since(start).Seconds())
	feats, samples := ft.Shape()
	slog.Info(title+" finished",
		"features", feats,
		"samples", samples,
		"total", ft.Total(),
		"sample_totals", ft.SampleTotals(),
		"duration", dur,
	)
	msg := fmt.Sprintf(
		"%s finished in %s: <em>%s</em> features across <em>%s</em> samples",
		title, dur, humanize.Comma(int64(feats)), humanize.Comma(int64(samples)),
	)
	gn.Info(msg)
}
