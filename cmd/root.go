/*
Copyright © 2026 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnshogun/internal/ioconfig"
	"github.com/gnames/gnshogun/internal/iofs"
	"github.com/gnames/gnshogun/internal/iologger"
	gnshogun "github.com/gnames/gnshogun/pkg"
	"github.com/gnames/gnshogun/pkg/config"
	"github.com/spf13/cobra"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", gnshogun.Version, gnshogun.Build),
		Use:     "gnshogun",
		Short:   "Taxonomic and functional profiling of shotgun reads with SHOGUN",
		Long: `gnshogun runs SHOGUN on shotgun metagenomic reads and converts its
results to feature tables.

It validates inputs (query reads, reference sequences, taxonomy and a
bowtie2 index directory), stages them as a SHOGUN database in a
temporary directory, runs SHOGUN, and saves feature tables in BIOM or
TSV format. SHOGUN and bowtie2 must be installed separately.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNSHOGUN_*)
  3. Config file (~/.config/gnshogun/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (shogun.threads -> GNSHOGUN_SHOGUN_THREADS).

  Examples:
    GNSHOGUN_SHOGUN_PATH         SHOGUN executable
    GNSHOGUN_SHOGUN_THREADS      Number of threads
    GNSHOGUN_OUTPUT_FORMAT       biom or tsv
    GNSHOGUN_LOG_LEVEL           Log level (debug/info/warn/error)`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "gnshogun version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnshogun")

	rootCmd.AddCommand(
		getTaxonomyCmd(),
		getPipelineCmd(),
		getIndexCmd(),
		getHistoryCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	problems, err := ioconfig.Problems(homeDir)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if len(problems) > 0 {
		gn.Warn(
			"Ignoring unknown settings in <em>%s</em>:\n  %s",
			config.ConfigFilePath(homeDir),
			strings.Join(problems, "\n  "),
		)
	}

	var cfgViper *config.Config
	if cfgViper, err = ioconfig.Load(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, appending to the log
	// file created above
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, true)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
