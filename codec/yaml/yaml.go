package yaml

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/0xalexb/strata/codec"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// ErrInvalidInclude is returned when an !include tag wraps a non-string value.
var ErrInvalidInclude = errors.New("!include requires a string value")

// ErrUnknownAnchor is returned when an alias references an anchor that was never defined.
var ErrUnknownAnchor = errors.New("unknown anchor")

// ErrUnsupportedNode is returned when the document contains a node kind the codec cannot represent.
var ErrUnsupportedNode = errors.New("unsupported YAML node")

const includeTag = "!include"

// Codec implements codec.Codec for YAML using goccy/go-yaml.
//
// Decoding walks the parsed syntax tree instead of calling yaml.Unmarshal
// so that !include tags survive as codec.Include values. Integers are
// normalized to int64 regardless of sign so merged configurations compare
// predictably.
type Codec struct{}

// NewCodec creates a new YAML codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode parses YAML data into a configuration value. An empty document
// decodes to nil.
func (c *Codec) Decode(data []byte) (any, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return nil, nil
	}

	dec := &decoder{anchors: make(map[string]any)}

	return dec.value(file.Docs[0].Body)
}

// Encode serializes a configuration value to YAML.
func (c *Codec) Encode(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}

	return out, nil
}

type decoder struct {
	anchors map[string]any
}

func (d *decoder) value(node ast.Node) (any, error) {
	switch n := node.(type) {
	case *ast.MappingNode:
		m := make(map[string]any, len(n.Values))
		for _, entry := range n.Values {
			err := d.mapEntry(m, entry)
			if err != nil {
				return nil, err
			}
		}

		return m, nil
	case *ast.MappingValueNode:
		// A single key/value pair at document level parses as a bare
		// MappingValueNode rather than a MappingNode.
		m := make(map[string]any, 1)

		err := d.mapEntry(m, n)
		if err != nil {
			return nil, err
		}

		return m, nil
	case *ast.SequenceNode:
		s := make([]any, 0, len(n.Values))
		for _, element := range n.Values {
			decoded, err := d.value(element)
			if err != nil {
				return nil, err
			}

			s = append(s, decoded)
		}

		return s, nil
	case *ast.TagNode:
		return d.tagged(n)
	case *ast.AnchorNode:
		return d.anchor(n)
	case *ast.AliasNode:
		return d.alias(n)
	case *ast.LiteralNode:
		return n.Value.Value, nil
	case ast.ScalarNode:
		return normalizeScalar(n.GetValue()), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedNode, node)
	}
}

func (d *decoder) mapEntry(m map[string]any, entry *ast.MappingValueNode) error {
	if _, isMerge := entry.Key.(*ast.MergeKeyNode); isMerge {
		return d.mergeEntry(m, entry)
	}

	key, err := d.value(entry.Key)
	if err != nil {
		return err
	}

	decoded, err := d.value(entry.Value)
	if err != nil {
		return err
	}

	m[fmt.Sprint(key)] = decoded

	return nil
}

// mergeEntry handles the YAML merge key (<<), folding the aliased mapping
// in beneath keys already present.
func (d *decoder) mergeEntry(m map[string]any, entry *ast.MappingValueNode) error {
	decoded, err := d.value(entry.Value)
	if err != nil {
		return err
	}

	merged, ok := decoded.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: merge key value is %T, not a mapping", ErrUnsupportedNode, decoded)
	}

	for key, value := range merged {
		if _, exists := m[key]; !exists {
			m[key] = value
		}
	}

	return nil
}

func (d *decoder) tagged(n *ast.TagNode) (any, error) {
	if n.Start.Value != includeTag {
		// Unknown tags decode as their underlying value.
		return d.value(n.Value)
	}

	inner, err := d.value(n.Value)
	if err != nil {
		return nil, err
	}

	path, ok := inner.(string)
	if !ok {
		return nil, fmt.Errorf("%w, got %T", ErrInvalidInclude, inner)
	}

	return codec.Include{Paths: strings.Fields(path)}, nil
}

func (d *decoder) anchor(n *ast.AnchorNode) (any, error) {
	name, err := d.value(n.Name)
	if err != nil {
		return nil, err
	}

	decoded, err := d.value(n.Value)
	if err != nil {
		return nil, err
	}

	d.anchors[fmt.Sprint(name)] = decoded

	return decoded, nil
}

func (d *decoder) alias(n *ast.AliasNode) (any, error) {
	name, err := d.value(n.Value)
	if err != nil {
		return nil, err
	}

	decoded, ok := d.anchors[fmt.Sprint(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAnchor, name)
	}

	return decoded, nil
}

func normalizeScalar(v any) any {
	switch typed := v.(type) {
	case int:
		return int64(typed)
	case uint64:
		if typed <= math.MaxInt64 {
			return int64(typed)
		}

		return typed
	default:
		return v
	}
}
