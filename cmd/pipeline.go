package cmd

import (
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getPipelineCmd returns the pipeline command.
func getPipelineCmd() *cobra.Command {
	var f profileFlags

	pipelineCmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Taxonomic and functional profiling of reads",
		Long: `Run the whole SHOGUN pipeline.

Inputs are the same as for the taxonomy command. The reference
database should carry functional annotations that SHOGUN understands.
Four tables are written to the output directory:

  taxa      strain-level taxonomic profile
  kegg      KEGG orthology profile
  modules   KEGG module profile
  pathways  KEGG pathway profile

Examples:
  gnshogun pipeline -q reads.fna -r refseqs.fna -t taxonomy.tsv \
    -i bt2-index -o results --threads 8`,
		Aliases: []string{"functional"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := profile(cmd, modePipeline, &f, newRunner())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addProfileFlags(pipelineCmd, &f)
	return pipelineCmd
}
