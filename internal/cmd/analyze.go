// internal/cmd/analyze.go
package cmd

import (
	"github.com/spf13/cobra"

	"plasmid/internal/app"
)

var analyzeOpts app.AnalyzeOptions

// analyzeCmd reports composition, restriction sites and ORFs of a plasmid.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a plasmid FASTA: composition, restriction sites, ORFs",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger()
		defer func() { _ = log.Sync() }()
		return app.RunAnalyze(analyzeOpts, cmd.OutOrStdout(), log)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	f := analyzeCmd.Flags()
	f.StringVarP(&analyzeOpts.In, "in", "i", "", "plasmid FASTA to analyze")
	f.StringVarP(&analyzeOpts.Markers, "markers", "m", "", "marker table (TSV); omit for built-in defaults")
	f.BoolVar(&analyzeOpts.JSON, "json", false, "emit the report as JSON")
	_ = analyzeCmd.MarkFlagRequired("in")
}
