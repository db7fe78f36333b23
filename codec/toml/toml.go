package toml

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Codec implements codec.Codec for TOML using BurntSushi/toml.
//
// TOML has no tag syntax, so inline includes are unavailable in TOML
// sources; the reserved "config" key works as usual.
type Codec struct{}

// NewCodec creates a new TOML codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode parses TOML data into a configuration mapping.
func (c *Codec) Decode(data []byte) (any, error) {
	var m map[string]any

	err := toml.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}

	return normalize(m), nil
}

// Encode serializes a configuration value to TOML. The value must be a
// mapping; TOML has no top-level scalars or sequences.
func (c *Codec) Encode(v any) ([]byte, error) {
	out, err := toml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling TOML: %w", err)
	}

	return out, nil
}

// normalize rewrites the decoder's concrete slice types ([]map[string]any
// for arrays of tables) into the []any / map[string]any value model the
// merge engine works on.
func normalize(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		for key, value := range typed {
			typed[key] = normalize(value)
		}

		return typed
	case []map[string]any:
		s := make([]any, len(typed))
		for i, element := range typed {
			s[i] = normalize(element)
		}

		return s
	case []any:
		for i, element := range typed {
			typed[i] = normalize(element)
		}

		return typed
	default:
		return v
	}
}
