package cmd

import (
	"github.com/gnames/gn"
	"github.com/gnames/gnshogun/internal/iorunner"
	"github.com/spf13/cobra"
)

// newRunner creates the runner of external programs.
var newRunner = func() iorunner.Runner { return iorunner.New() }

// getTaxonomyCmd returns the taxonomy command.
func getTaxonomyCmd() *cobra.Command {
	var f profileFlags

	taxonomyCmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Taxonomic profiling of reads",
		Long: `Align reads to reference genomes and assign taxonomy.

This command:
  1. Validates query reads, reference sequences, taxonomy and the
     bowtie2 index directory
  2. Stages them as a SHOGUN database in a temporary directory
  3. Runs 'shogun align' and 'shogun assign_taxonomy'
  4. Saves the taxa table to the output directory
  5. Removes the temporary directory

Read IDs of the query must look like <sample>_<n>, samples become
columns of the table.

Examples:
  gnshogun taxonomy -q reads.fna -r refseqs.fna -t taxonomy.tsv \
    -i bt2-index -o results

  # more permissive assignment, TSV output
  gnshogun taxonomy -q reads.fna -r refseqs.fna -t taxonomy.tsv \
    -i bt2-index -o results --taxacut 0.6 --percent-id 0.95 -f tsv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := profile(cmd, modeTaxonomy, &f, newRunner())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addProfileFlags(taxonomyCmd, &f)
	return taxonomyCmd
}
