// Package yaml implements codec.Codec for YAML documents using
// goccy/go-yaml, preserving !include tags as codec.Include values.
package yaml
