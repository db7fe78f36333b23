// Package merge implements non-destructive deep merging of configuration
// mappings.
//
// A configuration value is a scalar, a []any sequence, or a
// map[string]any mapping. Merging never mutates its inputs: the result
// is a fresh structure with deep-copied values, so callers may freely
// reuse or share the originals.
package merge
