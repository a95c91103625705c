// Package cli wires the cobra command surface. Commands print their results
// to stdout and keep all diagnostics on stderr so callers can parse output.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docindex/internal/config"
	"docindex/internal/logging"
)

var (
	cfgPath string
	verbose bool

	cfg *config.AppConfig
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "docindex",
		Short:        "Local TF-IDF document indexing, retrieval and text analytics",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := os.Getenv("DOCINDEX_LOG_LEVEL")
			if verbose {
				level = "debug"
			}
			logging.Setup(level)

			var err error
			if cfgPath != "" {
				cfg, err = config.Load(cfgPath)
			} else {
				cfg, _, err = config.LoadDefault()
			}
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		NewIndexCmd(),
		NewQueryCmd(),
		NewSearchCmd(),
		NewNerCmd(),
		NewSentimentCmd(),
		NewSummarizeCmd(),
	)
	return cmd
}

// Execute runs the root command. A non-nil error means the invocation failed
// and the process should exit non-zero.
func Execute() error {
	return NewRootCmd().Execute()
}
