// Package logging provides structured logging using Go's standard library log/slog.
// It outputs JSON by default, with a text format intended for the strata command-line tool.
package logging
