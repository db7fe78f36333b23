package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var errKeyNotFound = errors.New("key not found")

func newGetCmd() *cobra.Command {
	var searchPaths []string

	cmd := &cobra.Command{
		Use:   "get FILE KEY",
		Short: "Print one value from a resolved configuration",
		Long: `Resolve a configuration file and print the value at a dot-separated key,
e.g. "database.host".`,
		Example: `  strata get app.yaml database.host
  strata get app.yaml server.port -s ./configs`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := newLoader(searchPaths)

			resolved, err := loader.LoadFile(args[0], nil)
			if err != nil {
				return err
			}

			value, err := lookup(resolved, args[1])
			if err != nil {
				return err
			}

			return printValue(cmd, value)
		},
	}

	cmd.Flags().StringArrayVarP(&searchPaths, "search-path", "s", nil, "directory to try when resolving bare paths (repeatable)")

	return cmd
}

func lookup(m map[string]any, key string) (any, error) {
	segments := strings.Split(key, ".")

	var value any = m

	for i, segment := range segments {
		mapping, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a mapping", errKeyNotFound, strings.Join(segments[:i], "."))
		}

		value, ok = mapping[segment]
		if !ok {
			return nil, fmt.Errorf("%w: %s", errKeyNotFound, strings.Join(segments[:i+1], "."))
		}
	}

	return value, nil
}
