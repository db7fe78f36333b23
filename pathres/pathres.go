package pathres

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultSearchPaths is used by Resolve when the caller passes a nil
// search-path list: the parent directory first, then the current working
// directory.
func DefaultSearchPaths() []string {
	return []string{".", ""}
}

// Statter reports whether a path exists. Implemented by fsys.OS; injected
// so resolution is testable without touching the real filesystem.
type Statter interface {
	Exists(path string) bool
}

// Resolver resolves possibly-relative path strings against a parent
// directory and a list of search paths.
type Resolver struct {
	fs   Statter
	home func() (string, error)
}

// Option defines a function type for configuring a Resolver.
type Option func(*Resolver)

// WithHomeFunc replaces the home-directory lookup used for `~/` paths.
func WithHomeFunc(home func() (string, error)) Option {
	return func(r *Resolver) {
		r.home = home
	}
}

// New creates a Resolver that checks path existence through fs.
func New(fs Statter, opts ...Option) *Resolver {
	resolver := &Resolver{
		fs:   fs,
		home: os.UserHomeDir,
	}

	for _, apply := range opts {
		apply(resolver)
	}

	return resolver
}

// Resolve resolves path to a normalized path. Five forms are recognized,
// checked in order:
//
//   - absolute: cleaned and returned, no parent or search-path logic
//   - `~/...`: home-expanded and cleaned
//   - `./...` or `../...`: joined with parent (current directory when
//     parent is empty); explicit relativity always wins over search paths
//   - bare: each search path is prepended in order and the candidate
//     resolved as above; the first candidate that exists wins
//
// A bare path that matches no existing candidate is returned unchanged so
// the caller's open attempt surfaces a clear not-found error. A nil
// searchPaths means DefaultSearchPaths; an empty, non-nil list disables
// the search entirely.
func (r *Resolver) Resolve(path, parent string, searchPaths []string) string {
	if searchPaths == nil {
		searchPaths = DefaultSearchPaths()
	}

	if parent == "" {
		parent = "."
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	if strings.HasPrefix(path, "~/") {
		home, err := r.home()
		if err != nil {
			return path
		}

		return filepath.Clean(filepath.Join(home, path[2:]))
	}

	first, _, _ := strings.Cut(path, string(filepath.Separator))
	if first == "." || first == ".." {
		return filepath.Clean(filepath.Join(parent, path))
	}

	for _, searchPath := range searchPaths {
		candidate := path
		if searchPath != "" {
			// Join without cleaning: a "." search path has to stay
			// explicitly relative so it resolves against parent.
			candidate = searchPath + string(filepath.Separator) + path
		}

		resolved := r.Resolve(candidate, parent, []string{})
		if r.fs.Exists(resolved) {
			return filepath.Clean(resolved)
		}
	}

	return path
}

// Rewrite replaces string values in the mapping that look like relative
// paths (`./`, `../` prefixes) with their parent-joined normalized form,
// and `~/` values with their home-expanded form. Nested mappings are
// rewritten recursively; sequences are deliberately left alone so
// ordinary strings inside lists are never misread as paths. The mapping
// is modified in place and must be exclusively owned by the caller.
func (r *Resolver) Rewrite(m map[string]any, parent string) {
	for key, value := range m {
		switch typed := value.(type) {
		case map[string]any:
			r.Rewrite(typed, parent)
		case string:
			switch {
			case strings.HasPrefix(typed, "./") || strings.HasPrefix(typed, "../"):
				m[key] = filepath.Clean(filepath.Join(parent, typed))
			case strings.HasPrefix(typed, "~/"):
				home, err := r.home()
				if err == nil {
					m[key] = filepath.Join(home, typed[2:])
				}
			}
		}
	}
}
