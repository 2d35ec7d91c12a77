package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnshogun/internal/ioledger"
	"github.com/gnames/gnshogun/pkg/config"
	"github.com/spf13/cobra"
)

// getHistoryCmd returns the history command.
func getHistoryCmd() *cobra.Command {
	var num int
	var verbose bool

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent profiling runs",
		Long: `Show recent taxonomy and pipeline runs recorded in
~/.local/share/gnshogun/ledger.sqlite, newest first.

Recording is controlled by 'ledger' in config.yaml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := showHistory(cmd.OutOrStdout(), num, verbose)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	historyCmd.Flags().IntVarP(&num, "number", "n", 20, "number of runs to show")
	historyCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"show commands and outputs of every run")
	return historyCmd
}

func showHistory(w io.Writer, num int, verbose bool) error {
	l, err := ioledger.Open(config.LedgerFilePath(cfg.HomeDir))
	if err != nil {
		return err
	}
	defer l.Close()

	runs, err := l.Recent(context.Background(), num)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	for _, r := range runs {
		printRun(w, r, verbose)
	}
	return nil
}

func printRun(w io.Writer, r ioledger.Run, verbose bool) {
	fmt.Fprintf(w, "%s  %-8s  %-6s  %8s  taxacut=%v threads=%d percent_id=%v  %s\n",
		r.Start.Format("2006-01-02 15:04:05"),
		r.Mode,
		r.Status,
		gnfmt.TimeString(r.Duration.Seconds()),
		r.Params.TaxaCut, r.Params.Threads, r.Params.PercentID,
		r.IndexName,
	)
	if !verbose {
		return
	}
	fmt.Fprintf(w, "  id:    %s\n  query: %s\n", r.ID, r.Query)
	for _, v := range r.Commands {
		fmt.Fprintf(w, "  $ %s\n", v)
	}
	for _, v := range r.Outputs {
		fmt.Fprintf(w, "  > %s\n", v)
	}
	if r.Error != "" {
		fmt.Fprintf(w, "  error: %s\n", r.Error)
	}
}
