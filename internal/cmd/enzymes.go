// internal/cmd/enzymes.go
package cmd

import (
	"github.com/spf13/cobra"

	"plasmid/internal/app"
)

var enzymesMarkers string

// enzymesCmd lists the restriction enzymes available in the catalog, useful
// when a design references an enzyme that is not there.
var enzymesCmd = &cobra.Command{
	Use:   "enzymes",
	Short: "List catalog restriction enzymes as '<Name>: <Recognition sequence>'",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger()
		defer func() { _ = log.Sync() }()
		return app.RunEnzymes(enzymesMarkers, cmd.OutOrStdout(), log)
	},
}

func init() {
	rootCmd.AddCommand(enzymesCmd)

	enzymesCmd.Flags().StringVarP(&enzymesMarkers, "markers", "m", "", "marker table (TSV); omit for built-in defaults")
}
