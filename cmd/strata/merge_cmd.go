package main

import (
	"github.com/spf13/cobra"
)

func newMergeCmd() *cobra.Command {
	var (
		searchPaths []string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "merge FILE...",
		Short: "Resolve several configuration files and merge them in order",
		Long: `Resolve each file in turn and merge it over the previous result, so
later files override earlier ones. Each file's own includes still rank
below the file itself.`,
		Example: `  strata merge defaults.yaml site.yaml local.yaml
  strata merge base.toml override.yaml -o merged.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := newLoader(searchPaths)

			var (
				merged map[string]any
				err    error
			)

			for _, file := range args {
				merged, err = loader.LoadFile(file, merged)
				if err != nil {
					return err
				}
			}

			if output != "" {
				return loader.Save(output, merged)
			}

			return printValue(cmd, merged)
		},
	}

	cmd.Flags().StringArrayVarP(&searchPaths, "search-path", "s", nil, "directory to try when resolving bare paths (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file instead of stdout")

	return cmd
}
