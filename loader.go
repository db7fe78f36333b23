package strata

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/0xalexb/strata/codec"
	tomlcodec "github.com/0xalexb/strata/codec/toml"
	yamlcodec "github.com/0xalexb/strata/codec/yaml"
	"github.com/0xalexb/strata/fsys"
	"github.com/0xalexb/strata/merge"
	"github.com/0xalexb/strata/pathres"
)

// ReservedKey is the mapping key that references additional configuration
// sources to resolve and merge in. It never appears in resolved output.
const ReservedKey = "config"

// Loader resolves hierarchical configurations: it interprets the reserved
// "config" key, follows file includes recursively, applies namespacing,
// rewrites relative path values, and merges everything with the
// referencing mapping winning over what it includes.
//
// A Loader holds no mutable state between calls; the same instance may be
// used concurrently.
type Loader struct {
	fs          fsys.FileSystem
	codecs      map[string]codec.Codec
	searchPaths []string
	resolver    *pathres.Resolver
}

// New creates a Loader. By default it reads the real filesystem, resolves
// bare paths against the parent directory and then the working directory,
// and parses .yaml/.yml/.toml files (anything else is treated as YAML).
func New(opts ...Option) *Loader {
	options := Options{
		FS: fsys.NewOS(),
		Codecs: map[string]codec.Codec{
			".yaml": yamlcodec.NewCodec(),
			".yml":  yamlcodec.NewCodec(),
			".toml": tomlcodec.NewCodec(),
		},
	}

	for _, apply := range opts {
		apply(&options)
	}

	return &Loader{
		fs:          options.FS,
		codecs:      options.Codecs,
		searchPaths: options.SearchPaths,
		resolver:    pathres.New(options.FS, pathres.WithHomeFunc(options.FS.HomeDir)),
	}
}

// Load resolves a configuration mapping against current and returns the
// merged result. Keys in cfg override the same keys in current; anything
// pulled in through cfg's "config" key ranks below cfg's own keys.
// Neither input is mutated. A nil current is treated as empty.
func (l *Loader) Load(cfg, current map[string]any) (map[string]any, error) {
	return l.load(cfg, current, "", make(visitSet))
}

// LoadFile reads, parses, and resolves the configuration file at path,
// merging it over current. Relative references inside the file resolve
// against the file's own directory.
func (l *Loader) LoadFile(path string, current map[string]any) (map[string]any, error) {
	return l.loadFile(path, current, "", make(visitSet))
}

// Save serializes cfg with the codec matching path's extension and writes
// it to path. No path resolution is performed; path is taken as-is.
func (l *Loader) Save(path string, cfg map[string]any) error {
	data, err := l.codecFor(path).Encode(cfg)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", path, err)
	}

	return l.fs.WriteFile(path, data)
}

// visitSet tracks the chain of files currently being resolved so that a
// self-referencing configuration fails instead of recursing forever.
// Keyed by resolved path; entries are removed once a file finishes, so a
// diamond (two sources including the same file) is not a cycle.
type visitSet map[string]struct{}

// load is the resolution engine. parent is the directory of the file the
// mapping came from ("" when it came from memory or the command line).
func (l *Loader) load(cfg, current map[string]any, parent string, visiting visitSet) (map[string]any, error) {
	working := merge.Copy(cfg)
	result := merge.Copy(current)

	if reference, ok := working[ReservedKey]; ok {
		resolved, err := l.resolveReference(reference, result, parent, visiting)
		if err != nil {
			return nil, err
		}

		result = resolved

		delete(working, ReservedKey)
	}

	err := l.resolveIncludes(working, parent, visiting)
	if err != nil {
		return nil, err
	}

	if parent != "" {
		l.resolver.Rewrite(working, parent)
	}

	return merge.Maps(result, working), nil
}

func (l *Loader) loadFile(path string, current map[string]any, parent string, visiting visitSet) (map[string]any, error) {
	resolved := l.resolver.Resolve(path, parent, l.searchPaths)

	if _, active := visiting[resolved]; active {
		return nil, fmt.Errorf("%w: %s", ErrCyclicReference, resolved)
	}

	visiting[resolved] = struct{}{}
	defer delete(visiting, resolved)

	data, err := l.fs.ReadFile(resolved)
	if err != nil {
		return nil, err
	}

	decoded, err := l.codecFor(resolved).Decode(data)
	if err != nil {
		return nil, fmt.Errorf("file %q: %w", resolved, err)
	}

	cfg, err := asMapping(decoded, resolved)
	if err != nil {
		return nil, err
	}

	return l.load(cfg, current, filepath.Dir(resolved), visiting)
}

// resolveReference dispatches on the shape of a "config" value: a string
// loads one file, a sequence loads its elements left to right (later
// elements override earlier ones), and a mapping nests each source under
// its namespace key.
func (l *Loader) resolveReference(reference any, current map[string]any, parent string, visiting visitSet) (map[string]any, error) {
	switch typed := reference.(type) {
	case string:
		return l.loadFile(typed, current, parent, visiting)
	case []any:
		return l.resolveReferenceList(typed, current, parent, visiting)
	case map[string]any:
		return l.resolveNamespaces(typed, current, parent, visiting)
	default:
		return nil, fmt.Errorf("%w, got %T", ErrInvalidConfigReference, reference)
	}
}

func (l *Loader) resolveReferenceList(references []any, current map[string]any, parent string, visiting visitSet) (map[string]any, error) {
	var err error

	for _, element := range references {
		current, err = l.resolveReference(element, current, parent, visiting)
		if err != nil {
			return nil, err
		}
	}

	return current, nil
}

// resolveNamespaces loads each source beneath its namespace key instead of
// merging at the root. For single-file sources the file's directory is
// recorded under "__path_<namespace>__" so downstream consumers can
// resolve further references scoped to that namespace.
func (l *Loader) resolveNamespaces(references map[string]any, current map[string]any, parent string, visiting visitSet) (map[string]any, error) {
	for namespace, source := range references {
		sub, isMapping := current[namespace].(map[string]any)
		if !isMapping {
			sub = make(map[string]any)
		}

		loaded, err := l.resolveReference(source, sub, parent, visiting)
		if err != nil {
			return nil, fmt.Errorf("namespace %q: %w", namespace, err)
		}

		current[namespace] = loaded

		if path, isFile := source.(string); isFile {
			resolved := l.resolver.Resolve(path, parent, l.searchPaths)
			current[NamespacePathKey(namespace)] = filepath.Dir(resolved)
		}
	}

	return current, nil
}

// NamespacePathKey returns the auxiliary key under which the source
// directory of a namespaced include is recorded.
func NamespacePathKey(namespace string) string {
	return "__path_" + namespace + "__"
}

// resolveIncludes replaces codec.Include markers anywhere in the value
// with the merged contents of the referenced files, later files winning.
// The value must be exclusively owned by the caller; containers are
// updated in place.
func (l *Loader) resolveIncludes(v any, parent string, visiting visitSet) error {
	switch typed := v.(type) {
	case map[string]any:
		for key, value := range typed {
			replaced, err := l.resolveIncludeValue(value, parent, visiting)
			if err != nil {
				return err
			}

			typed[key] = replaced
		}
	case []any:
		for i, element := range typed {
			replaced, err := l.resolveIncludeValue(element, parent, visiting)
			if err != nil {
				return err
			}

			typed[i] = replaced
		}
	}

	return nil
}

func (l *Loader) resolveIncludeValue(v any, parent string, visiting visitSet) (any, error) {
	include, isInclude := v.(codec.Include)
	if !isInclude {
		err := l.resolveIncludes(v, parent, visiting)

		return v, err
	}

	var current map[string]any

	for _, path := range include.Paths {
		loaded, err := l.loadFile(path, current, parent, visiting)
		if err != nil {
			return nil, err
		}

		current = loaded
	}

	return current, nil
}

func (l *Loader) codecFor(path string) codec.Codec {
	ext := strings.ToLower(filepath.Ext(path))

	c, ok := l.codecs[ext]
	if !ok {
		return l.codecs[".yaml"]
	}

	return c
}

func asMapping(decoded any, path string) (map[string]any, error) {
	if decoded == nil {
		return make(map[string]any), nil
	}

	m, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s holds %T", ErrNotMapping, path, decoded)
	}

	return m, nil
}
