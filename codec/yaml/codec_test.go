package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-transformer/primitive"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := New()
	assert.Equal(t, "yaml", c.Name())

	doc := map[string]any{
		"name":       "x",
		"tags":       []any{"a", "b"},
		"nested":     map[string]any{"ok": true, "none": nil},
		"$geo.point": map[string]any{"x": 1, "y": 2.5},
	}

	data, err := c.Marshal(doc)
	require.NoError(t, err)

	got, err := c.Unmarshal(data)
	require.NoError(t, err)

	m, ok := got.(map[string]any)
	require.True(t, ok, "decoded %T", got)
	assert.Equal(t, "x", m["name"])
	assert.Equal(t, []any{"a", "b"}, m["tags"])
	assert.Equal(t, map[string]any{"ok": true, "none": nil}, m["nested"])

	point, ok := m["$geo.point"].(map[string]any)
	require.True(t, ok)
	x, err := primitive.ToFloat64(point["x"])
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x, 0)
	y, err := primitive.ToFloat64(point["y"])
	require.NoError(t, err)
	assert.InDelta(t, 2.5, y, 0)
}

func TestCodec_UnmarshalError(t *testing.T) {
	_, err := New().Unmarshal([]byte{0xc1, 0x7b, 0x7b})
	assert.Error(t, err)
}

func TestCodec_NonStringKeys(t *testing.T) {
	_, err := New().Unmarshal([]byte("1: one\n2: two\n"))
	assert.ErrorContains(t, err, "is not a string")
}

func TestNormalize_Nested(t *testing.T) {
	in := []any{map[any]any{"a": []any{map[any]any{"b": 1}}}}

	got, err := normalize(in)
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"a": []any{map[string]any{"b": 1}}}}, got)
}
