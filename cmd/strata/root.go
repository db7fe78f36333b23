package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/strata"
	"github.com/0xalexb/strata/logging"

	"github.com/spf13/cobra"
)

// Execute runs the strata command-line tool.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "strata",
		Short:         "Resolve layered YAML/TOML configurations",
		Version:       fmt.Sprintf("%s (built %s)", strata.Version, strata.CompiledAt),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger := logging.NewLogger(logging.LoggerConfig{
				Level:  logLevel,
				Format: "text",
			}, os.Stderr)
			slog.SetDefault(logger)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newResolveCmd(),
		newGetCmd(),
		newMergeCmd(),
	)

	return cmd
}

func newLoader(searchPaths []string) *strata.Loader {
	if len(searchPaths) == 0 {
		return strata.New()
	}

	return strata.New(strata.WithSearchPaths(searchPaths...))
}
