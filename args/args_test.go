package args_test

import (
	"testing"

	"github.com/0xalexb/strata/args"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Defaults(t *testing.T) {
	t.Parallel()

	set := args.NewSet(
		args.Option{Name: "test", Default: 3},
		args.Option{Name: "config"},
	)

	assert.Equal(t, map[string]any{"test": 3}, set.Defaults())
}

func TestSet_Parse_ExplicitOnly(t *testing.T) {
	t.Parallel()

	set := args.NewSet(
		args.Option{Name: "test", Default: 3},
		args.Option{Name: "config", Default: "default.yaml"},
	)

	explicit, rest, err := set.Parse([]string{"--test", "4"})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"test": int64(4)}, explicit)
	assert.Empty(t, rest)
}

func TestSet_Parse_LeftoverTokens(t *testing.T) {
	t.Parallel()

	set := args.NewSet(args.Option{Name: "test"})

	explicit, rest, err := set.Parse([]string{
		"--a.b", "1", "extra", "--test", "2", "--unknown",
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"test": int64(2)}, explicit)
	assert.Equal(t, []string{"--a.b", "1", "extra", "--unknown"}, rest)
}

func TestSet_Parse_YAMLTyping(t *testing.T) {
	t.Parallel()

	set := args.NewSet(
		args.Option{Name: "count"},
		args.Option{Name: "ratio"},
		args.Option{Name: "list"},
		args.Option{Name: "name"},
	)

	explicit, rest, err := set.Parse([]string{
		"--count", "4",
		"--ratio", "2.3",
		"--list", "[1, 2]",
		"--name", "plain",
	})

	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, map[string]any{
		"count": int64(4),
		"ratio": 2.3,
		"list":  []any{int64(1), int64(2)},
		"name":  "plain",
	}, explicit)
}

func TestSet_Parse_InlineEquals(t *testing.T) {
	t.Parallel()

	set := args.NewSet(args.Option{Name: "test"})

	explicit, rest, err := set.Parse([]string{"--test=5"})

	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, map[string]any{"test": int64(5)}, explicit)
}

func TestSet_Parse_MissingValue(t *testing.T) {
	t.Parallel()

	set := args.NewSet(args.Option{Name: "test"})

	_, _, err := set.Parse([]string{"--test"})

	require.Error(t, err)
}
