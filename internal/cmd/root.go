// Package cmd is the cobra command tree for the plasmid CLI.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"plasmid/internal/logging"
	"plasmid/internal/version"
)

var verbose bool

// usageError marks flag and argument mistakes so Execute can exit 2
// instead of 1.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "plasmid",
	Short:         "Assemble synthetic plasmids from a genomic sequence, a design list, and a marker table",
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "enable debug logging")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})
}

// logger builds the CLI logger per the --verbose flag.
func logger() *zap.Logger {
	return logging.New(verbose)
}

// Execute runs the command tree. It returns the process exit code: 0 on
// success, 1 on run failure, 2 on usage errors.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		log := logger()
		defer func() { _ = log.Sync() }()
		log.Error("failed", zap.Error(err))
		var ue *usageError
		if errors.As(err, &ue) {
			return 2
		}
		return 1
	}
	return 0
}
