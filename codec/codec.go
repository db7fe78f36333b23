package codec

// Codec (de)serializes configuration values. Decode turns a document into
// a configuration value (map[string]any, []any, or a scalar); Encode is
// the inverse. Implementations live in codec/yaml and codec/toml.
type Codec interface {
	Decode(data []byte) (any, error)
	Encode(v any) ([]byte, error)
}

// Include marks a value that was tagged as an inline file inclusion
// (YAML `!include`). The loader replaces it with the merged contents of
// the referenced files, later paths winning over earlier ones. A distinct
// type is used so ordinary strings can never be mistaken for includes.
type Include struct {
	Paths []string
}
