package strata_test

import (
	"testing"

	"github.com/0xalexb/strata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCodec struct {
	value map[string]any
}

func (c *staticCodec) Decode(_ []byte) (any, error) {
	return c.value, nil
}

func (c *staticCodec) Encode(_ any) ([]byte, error) {
	return []byte("static"), nil
}

func TestWithCodec_RegistersExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "config.static", "ignored")

	loader := strata.New(strata.WithCodec(".static", &staticCodec{
		value: map[string]any{"from": "codec"},
	}))

	loaded, err := loader.LoadFile(path, nil)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"from": "codec"}, loaded)
}

func TestUnknownExtensionFallsBackToYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "config.conf", "a: 1\n")

	loader := strata.New()

	loaded, err := loader.LoadFile(path, nil)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": int64(1)}, loaded)
}
