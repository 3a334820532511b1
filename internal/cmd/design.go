// internal/cmd/design.go
package cmd

import (
	"github.com/spf13/cobra"

	"plasmid/internal/app"
)

var designOpts app.DesignOptions

// designCmd assembles a plasmid from the three input files.
var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Assemble a plasmid and emit FASTA plus a placement manifest",
	Long: `Assembles a synthetic plasmid from a genomic FASTA, an ordered design
list, and a marker table. Restriction sites of catalog enzymes the design
does not reference are stripped from the output by silent point
substitutions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger()
		defer func() { _ = log.Sync() }()
		return app.RunDesign(designOpts, log)
	},
}

func init() {
	rootCmd.AddCommand(designCmd)

	f := designCmd.Flags()
	f.StringVarP(&designOpts.In, "in", "i", "", "genomic FASTA input ('-' for stdin, .gz supported)")
	f.StringVarP(&designOpts.Design, "design", "d", "", "design file: one 'Name, MarkerRef' per line")
	f.StringVarP(&designOpts.Markers, "markers", "m", "", "marker table (TSV); omit for built-in defaults")
	f.StringVarP(&designOpts.Out, "out", "o", "", "output FASTA path")
	f.StringVar(&designOpts.Manifest, "manifest", "", "placement manifest path (.json for JSON, else TSV)")
	f.StringVarP(&designOpts.Config, "config", "c", "", "YAML config with ORI scan parameters")
	_ = designCmd.MarkFlagRequired("in")
	_ = designCmd.MarkFlagRequired("design")
	_ = designCmd.MarkFlagRequired("out")
}
