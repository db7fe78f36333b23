package main

import (
	"fmt"
	"log/slog"

	yamlcodec "github.com/0xalexb/strata/codec/yaml"

	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	var (
		searchPaths []string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "resolve FILE",
		Short: "Resolve a configuration file and print the merged result",
		Long: `Load a configuration file, follow its "config" references and !include
tags recursively, and print the fully merged configuration as YAML.`,
		Example: `  strata resolve app.yaml
  strata resolve app.yaml -s ./configs -s ~/configs
  strata resolve app.yaml -o resolved.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := newLoader(searchPaths)

			resolved, err := loader.LoadFile(args[0], nil)
			if err != nil {
				return err
			}

			slog.Debug("configuration resolved", slog.String("file", args[0]), slog.Int("keys", len(resolved)))

			if output != "" {
				return loader.Save(output, resolved)
			}

			return printValue(cmd, resolved)
		},
	}

	cmd.Flags().StringArrayVarP(&searchPaths, "search-path", "s", nil, "directory to try when resolving bare paths (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file instead of stdout")

	return cmd
}

func printValue(cmd *cobra.Command, v any) error {
	encoded, err := yamlcodec.NewCodec().Encode(v)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(encoded)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
