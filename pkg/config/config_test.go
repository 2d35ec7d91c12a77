package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gnshogun/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnshogun"),
		},
		{
			msg: "data dir",
			fn:  config.DataDir,
			res: filepath.Join(tempHome, ".local", "share", "gnshogun"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnshogun", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gnshogun", "config.yaml"),
		},
		{
			msg: "ledger file",
			fn:  config.LedgerFilePath,
			res: filepath.Join(tempHome, ".local", "share", "gnshogun",
				"ledger.sqlite"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()
	require.NotNil(t, cfg)

	assert.Equal(t, "shogun", cfg.Shogun.Path)
	assert.Equal(t, "bowtie2-build", cfg.Shogun.Bowtie2BuildPath)
	assert.Equal(t, 0.8, cfg.Shogun.TaxaCut)
	assert.Equal(t, 1, cfg.Shogun.Threads)
	assert.Equal(t, 0.98, cfg.Shogun.PercentID)
	assert.Equal(t, "biom", cfg.Output.Format)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)

	assert.Empty(t, cfg.TmpDir)
	assert.False(t, cfg.Ledger)
	assert.False(t, cfg.KeepStaging)
	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
}

func TestOptTaxaCut(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"sets valid value", 0.5, 0.5},
		{"accepts upper bound", 1.0, 1.0},
		{"rejects zero", 0, 0.8},
		{"rejects negative", -0.1, 0.8},
		{"rejects above one", 1.01, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptTaxaCut(tt.input)})
			assert.Equal(t, tt.expected, cfg.Shogun.TaxaCut)
		})
	}
}

func TestOptPercentID(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"sets valid value", 0.9, 0.9},
		{"accepts zero", 0, 0},
		{"accepts one", 1, 1},
		{"rejects negative", -1, 0.98},
		{"rejects above one", 2, 0.98},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptPercentID(tt.input)})
			assert.Equal(t, tt.expected, cfg.Shogun.PercentID)
		})
	}
}

func TestOptThreads(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptThreads(8)})
	assert.Equal(t, 8, cfg.Shogun.Threads)

	cfg.Update([]config.Option{config.OptThreads(0)})
	assert.Equal(t, 8, cfg.Shogun.Threads, "zero threads is ignored")
}

func TestOptShogunPath(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptShogunPath("  /opt/bin/shogun ")})
	assert.Equal(t, "/opt/bin/shogun", cfg.Shogun.Path)

	cfg.Update([]config.Option{config.OptShogunPath("   ")})
	assert.Equal(t, "/opt/bin/shogun", cfg.Shogun.Path)
}

func TestOptEnums(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptOutputFormat(" TSV "),
		config.OptLogLevel("debug"),
		config.OptLogFormat("text"),
		config.OptLogDestination("stderr"),
	})
	assert.Equal(t, "tsv", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Destination)

	cfg.Update([]config.Option{
		config.OptOutputFormat("hdf5"),
		config.OptLogLevel("verbose"),
	})
	assert.Equal(t, "tsv", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestRuntimeOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir("/home/user"),
		config.OptKeepStaging(true),
		config.OptWithProgress(true),
	})
	assert.Equal(t, "/home/user", cfg.HomeDir)
	assert.True(t, cfg.KeepStaging)
	assert.True(t, cfg.WithProgress)
}

func TestToOptions_RoundTrip(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptShogunPath("/usr/local/bin/shogun"),
		config.OptTaxaCut(0.9),
		config.OptThreads(4),
		config.OptPercentID(0.95),
		config.OptOutputFormat("tsv"),
		config.OptTmpDir("/scratch"),
		config.OptLedger(true),
		config.OptJobsNumber(3),
		config.OptHomeDir("/home/user"),
		config.OptKeepStaging(true),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, src.Shogun, dst.Shogun)
	assert.Equal(t, src.Output, dst.Output)
	assert.Equal(t, src.Log, dst.Log)
	assert.Equal(t, "/scratch", dst.TmpDir)
	assert.True(t, dst.Ledger)
	assert.Equal(t, 3, dst.JobsNumber)

	// runtime fields are not persisted
	assert.Empty(t, dst.HomeDir)
	assert.False(t, dst.KeepStaging)
}

func TestToOptions_SkipsZeroValues(t *testing.T) {
	var partial config.Config
	partial.Shogun.Threads = 2

	cfg := config.New()
	cfg.Update(partial.ToOptions())

	assert.Equal(t, 2, cfg.Shogun.Threads)
	assert.Equal(t, 0.8, cfg.Shogun.TaxaCut)
	assert.Equal(t, "shogun", cfg.Shogun.Path)
}
