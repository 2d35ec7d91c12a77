package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnshogun/internal/ioartifact"
	"github.com/gnames/gnshogun/internal/iobt2"
	"github.com/gnames/gnshogun/pkg/bt2"
	"github.com/gnames/gnshogun/pkg/errcode"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// getIndexCmd returns the index command with its subcommands.
func getIndexCmd() *cobra.Command {
	indexCmd := &cobra.Command{
		Use:   "index",
		Short: "Validate or build bowtie2 index directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	indexCmd.AddCommand(getIndexValidateCmd(), getIndexBuildCmd())
	return indexCmd
}

func getIndexValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <dir>...",
		Short: "Check that directories are bowtie2 indexes",
		Long: `Check that every given directory holds exactly one bowtie2 index:
six files <name>.1.bt2, <name>.2.bt2, <name>.3.bt2, <name>.4.bt2,
<name>.rev.1.bt2 and <name>.rev.2.bt2 and nothing else.

Directories are checked concurrently, the number of workers is set by
jobs_number in config.yaml.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validateIndexes(cmd.OutOrStdout(), args, cfg.JobsNumber)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
}

type validation struct {
	idx *bt2.Index
	err error
}

// validateIndexes checks all dirs and prints one line per directory.
// The first invalid directory, in argument order, is returned as error.
func validateIndexes(w io.Writer, dirs []string, jobs int) error {
	res := make([]validation, len(dirs))

	var g errgroup.Group
	g.SetLimit(max(jobs, 1))
	for i, dir := range dirs {
		g.Go(func() error {
			idx, err := iobt2.Load(dir)
			res[i] = validation{idx: idx, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for i, v := range res {
		if v.err != nil {
			fmt.Fprintf(w, "INVALID %s\n", dirs[i])
			errs = append(errs, v.err)
			continue
		}
		fmt.Fprintf(w, "OK      %s (%s)\n", dirs[i], v.idx.Name())
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func getIndexBuildCmd() *cobra.Command {
	var refseqs, outDir, name string
	var threads int

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build a bowtie2 index from reference sequences",
		Long: `Build a bowtie2 index directory with bowtie2-build.

The reference FASTA file is validated first. The resulting directory
can be used with the -i flag of taxonomy and pipeline commands.

Examples:
  gnshogun index build -r refseqs.fna -o bt2-index -n refdb --threads 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := buildIndex(refseqs, outDir, name, threads)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	fs := buildCmd.Flags()
	fs.StringVarP(&refseqs, "refseqs", "r", "", "FASTA file with reference genomes")
	fs.StringVarP(&outDir, "output", "o", "", "directory for the index")
	fs.StringVarP(&name, "name", "n", "", "name of the index (file prefix)")
	fs.IntVar(&threads, "threads", 1, "number of threads for bowtie2-build")
	for _, v := range []string{"refseqs", "output", "name"} {
		_ = buildCmd.MarkFlagRequired(v)
	}
	return buildCmd
}

func buildIndex(refseqs, outDir, name string, threads int) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m, prefix, ok := bt2.Match(name + bt2.Idx1.Suffix())
	if !ok || m != bt2.Idx1 || prefix != name || strings.ContainsRune(name, filepath.Separator) {
		return &gn.Error{
			Code: errcode.ParamsError,
			Msg:  "Index name <em>%q</em> cannot be used as a file prefix",
			Vars: []any{name},
			Err:  fmt.Errorf("invalid index name %q", name),
		}
	}

	seqs, err := ioartifact.LoadRefSeqs(refseqs)
	if err != nil {
		return err
	}
	gn.Info("Building index <em>%s</em> from %d sequences", name, seqs.Count)

	idx, err := iobt2.Build(
		ctx, newRunner(), cfg.Shogun.Bowtie2BuildPath,
		seqs.Path, outDir, name, threads,
	)
	if err != nil {
		return err
	}

	gn.Info("Index <em>%s</em> is ready in <em>%s</em>", idx.Name(), idx.Dir)
	return nil
}
