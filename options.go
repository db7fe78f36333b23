package strata

import (
	"github.com/0xalexb/strata/codec"
	"github.com/0xalexb/strata/fsys"
)

// Options holds configuration settings for a Loader.
type Options struct {
	SearchPaths []string
	FS          fsys.FileSystem
	Codecs      map[string]codec.Codec
}

// Option defines a function type for applying Loader options.
type Option func(*Options)

// WithSearchPaths sets the directories tried, in order, when resolving a
// bare path (one with no absolute, home, or explicit-relative marker).
// The default is the parent directory first, then the current working
// directory.
func WithSearchPaths(paths ...string) Option {
	return func(opts *Options) {
		opts.SearchPaths = paths
	}
}

// WithFileSystem replaces the filesystem collaborator.
func WithFileSystem(fs fsys.FileSystem) Option {
	return func(opts *Options) {
		opts.FS = fs
	}
}

// WithCodec registers a codec for a file extension (including the dot,
// e.g. ".json"). YAML (.yaml, .yml) and TOML (.toml) are registered by
// default; files with any other extension are parsed as YAML.
func WithCodec(ext string, c codec.Codec) Option {
	return func(opts *Options) {
		if opts.Codecs == nil {
			opts.Codecs = make(map[string]codec.Codec)
		}

		opts.Codecs[ext] = c
	}
}
