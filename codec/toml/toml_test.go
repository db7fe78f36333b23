package toml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Mapping(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	data := []byte(`
test_param_1 = 2
test_param_2 = "Test string"
test_list = [1, 2, 3]

[nested]
enabled = true
ratio = 2.3
`)

	decoded, err := c.Decode(data)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"test_param_1": int64(2),
		"test_param_2": "Test string",
		"test_list":    []any{int64(1), int64(2), int64(3)},
		"nested": map[string]any{
			"enabled": true,
			"ratio":   2.3,
		},
	}, decoded)
}

func TestDecode_ArrayOfTables(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	data := []byte(`
[[servers]]
name = "a"

[[servers]]
name = "b"
`)

	decoded, err := c.Decode(data)

	require.NoError(t, err)

	m, ok := decoded.(map[string]any)
	require.True(t, ok)

	servers, ok := m["servers"].([]any)
	require.True(t, ok, "arrays of tables must normalize to []any, got %T", m["servers"])
	assert.Equal(t, map[string]any{"name": "a"}, servers[0])
	assert.Equal(t, map[string]any{"name": "b"}, servers[1])
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	_, err := c.Decode([]byte("not toml ==="))

	require.Error(t, err)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	original := map[string]any{
		"name":  "strata",
		"count": int64(3),
	}

	encoded, err := c.Encode(original)
	require.NoError(t, err)

	decoded, err := c.Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, original, decoded)
}
