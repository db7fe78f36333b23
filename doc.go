// Package strata loads layered configurations from YAML/TOML files,
// command-line arguments, and in-memory mappings.
//
// The reserved "config" key pulls additional sources into a mapping
// before the mapping's own keys apply:
//
//	config: base.yaml          # one file
//	config: [a.yaml, b.yaml]   # several, later ones override earlier
//	config: {db: db.yaml}      # nested under the "db" namespace
//
// Included sources never outrank the mapping that references them, so a
// file always overrides its own includes, and command-line overrides beat
// everything. Relative paths inside a file resolve against that file's
// directory; bare paths fall back to an ordered search-path list.
package strata
