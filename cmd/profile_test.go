package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnshogun/internal/ioledger"
	"github.com/gnames/gnshogun/internal/iotable"
	"github.com/gnames/gnshogun/internal/iotesting"
	"github.com/gnames/gnshogun/pkg/bt2"
	"github.com/gnames/gnshogun/pkg/config"
	"github.com/gnames/gnshogun/pkg/errcode"
	"github.com/gnames/gnshogun/pkg/shogun"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileCmd creates a command with profiling flags parsed from args.
func profileCmd(t *testing.T, args ...string) (*cobra.Command, *profileFlags) {
	t.Helper()
	var f profileFlags
	c := &cobra.Command{Use: "test"}
	addProfileFlags(c, &f)
	require.NoError(t, c.ParseFlags(args))
	return c, &f
}

func inputArgs(t *testing.T) (args []string, outDir string) {
	t.Helper()
	dir := t.TempDir()
	q, r, tx, idx := iotesting.Inputs(t, dir)
	outDir = filepath.Join(dir, "results")
	args = []string{"-q", q, "-r", r, "-t", tx, "-i", idx, "-o", outDir}
	return args, outDir
}

func setConfig(t *testing.T) {
	t.Helper()
	cfg = iotesting.Config(t)
	cfg.Update([]config.Option{config.OptLedger(true)})
}

func TestProfile_Taxonomy(t *testing.T) {
	setConfig(t)
	args, outDir := inputArgs(t)
	c, f := profileCmd(t, append(args, "--taxacut", "0.5", "-f", "tsv")...)
	fake := &iotesting.FakeShogun{}

	err := profile(c, modeTaxonomy, f, fake)
	require.NoError(t, err)

	assert.Equal(t, []string{"align", "assign_taxonomy"}, fake.Subcommands())
	assert.Contains(t, fake.Calls[0].Args, "0.5")
	assert.Equal(t, []string{"taxa.tsv"}, iotesting.Entries(t, outDir))

	ft, err := iotable.ReadTSV(filepath.Join(outDir, "taxa.tsv"))
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "S2"}, ft.Samples)
	assert.Equal(t, iotesting.TaxaFeatures, ft.Features)

	l, err := ioledger.Open(config.LedgerFilePath(cfg.HomeDir))
	require.NoError(t, err)
	defer l.Close()
	runs, err := l.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, modeTaxonomy, runs[0].Mode)
	assert.Equal(t, ioledger.StatusOK, runs[0].Status)
	assert.Equal(t, "refdb", runs[0].IndexName)
	assert.Len(t, runs[0].Commands, 2)
	assert.Equal(t, 0.5, runs[0].Params.TaxaCut)
	assert.Equal(t, []string{filepath.Join(outDir, "taxa.tsv")}, runs[0].Outputs)
}

func TestProfile_Pipeline(t *testing.T) {
	setConfig(t)
	args, outDir := inputArgs(t)
	c, f := profileCmd(t, args...)
	fake := &iotesting.FakeShogun{}

	err := profile(c, modePipeline, f, fake)
	require.NoError(t, err)

	assert.Equal(t, []string{"pipeline"}, fake.Subcommands())
	assert.Equal(t,
		[]string{"kegg.biom", "modules.biom", "pathways.biom", "taxa.biom"},
		iotesting.Entries(t, outDir),
	)
	assert.Empty(t, iotesting.Entries(t, cfg.TmpDir))
}

func TestProfile_Failure(t *testing.T) {
	setConfig(t)
	args, outDir := inputArgs(t)
	c, f := profileCmd(t, args...)
	fake := &iotesting.FakeShogun{FailOn: "assign_taxonomy"}

	err := profile(c, modeTaxonomy, f, fake)
	require.Error(t, err)
	assert.NoDirExists(t, outDir)
	assert.Empty(t, iotesting.Entries(t, cfg.TmpDir))

	l, err := ioledger.Open(config.LedgerFilePath(cfg.HomeDir))
	require.NoError(t, err)
	defer l.Close()
	runs, err := l.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, ioledger.StatusFailed, runs[0].Status)
	assert.NotEmpty(t, runs[0].Error)
}

func TestProfile_BadParams(t *testing.T) {
	setConfig(t)
	args, _ := inputArgs(t)

	for _, extra := range [][]string{
		{"--taxacut", "0"},
		{"--taxacut", "1.5"},
		{"--threads", "0"},
		{"--percent-id", "1.1"},
	} {
		c, f := profileCmd(t, append(args, extra...)...)
		fake := &iotesting.FakeShogun{}

		err := profile(c, modeTaxonomy, f, fake)
		require.Error(t, err, extra)

		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr), extra)
		assert.Equal(t, errcode.ParamsError, gnErr.Code, extra)
		assert.Empty(t, fake.Calls, extra)
	}
}

func TestProfile_InvalidIndex(t *testing.T) {
	setConfig(t)
	dir := t.TempDir()
	q, r, tx, _ := iotesting.Inputs(t, dir)
	idx := iotesting.WriteIndexFiles(t, filepath.Join(dir, "bad"),
		append(bt2.FileNames("refdb"), "refdb2.1.bt2"))
	c, f := profileCmd(t, "-q", q, "-r", r, "-t", tx, "-i", idx, "-o", dir)
	fake := &iotesting.FakeShogun{}

	err := profile(c, modeTaxonomy, f, fake)
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.IndexFormatError, gnErr.Code)
	assert.Empty(t, fake.Calls)
}

func TestParams(t *testing.T) {
	c := config.New()
	c.Update([]config.Option{config.OptThreads(6)})

	cmd, f := profileCmd(t)
	assert.Equal(t, shogun.Params{TaxaCut: 0.8, Threads: 6, PercentID: 0.98}, f.params(cmd, c))

	cmd, f = profileCmd(t, "--percent-id", "0.9", "--threads", "2")
	assert.Equal(t, shogun.Params{TaxaCut: 0.8, Threads: 2, PercentID: 0.9}, f.params(cmd, c))
}

// TestProfileFlags_Shorthands verifies SHOGUN option letters are not
// reused for unrelated flags.
func TestProfileFlags_Shorthands(t *testing.T) {
	cmd, f := profileCmd(t, "--progress")
	assert.True(t, f.progress)
	assert.Empty(t, cmd.Flags().Lookup("progress").Shorthand)
	assert.Nil(t, cmd.Flags().ShorthandLookup("p"))

	var g profileFlags
	c := &cobra.Command{Use: "test"}
	addProfileFlags(c, &g)
	assert.Error(t, c.ParseFlags([]string{"-p"}))
}

func TestValidateIndexes(t *testing.T) {
	dir := t.TempDir()
	good := iotesting.WriteIndex(t, filepath.Join(dir, "good"), "refdb")
	bad := iotesting.WriteIndexFiles(t, filepath.Join(dir, "bad"), bt2.FileNames("refdb")[:4])
	other := iotesting.WriteIndex(t, filepath.Join(dir, "other"), "other")

	var buf bytes.Buffer
	require.NoError(t, validateIndexes(&buf, []string{good, other}, 2))
	assert.Equal(t,
		"OK      "+good+" (refdb)\nOK      "+other+" (other)\n",
		buf.String(),
	)

	buf.Reset()
	err := validateIndexes(&buf, []string{good, bad, other}, 1)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "INVALID "+bad)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.IndexFormatError, gnErr.Code)
}

func TestWriteTables_BadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := writeTables(filepath.Join(file, "out"), iotable.FormatBIOM, nil)
	require.Error(t, err)
}
