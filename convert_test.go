package pwtext_test

import (
	"testing"

	"github.com/PascalWirtz/pwtext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Parallel()

	doc := pwtext.New(sample)

	assert.Equal(t, 10, pwtext.Get[int](doc, "tag2"))
	assert.Equal(t, int64(10), pwtext.Get[int64](doc, "container1/subtag2"))
	assert.Equal(t, uint16(10), pwtext.Get[uint16](doc, "tag2"))
	assert.InDelta(t, 1.5, pwtext.Get[float64](doc, "tag3"), 1e-9)
	assert.InDelta(t, float32(1.5), pwtext.Get[float32](doc, "container1/subtag3"), 1e-6)
	assert.Equal(t, "value1", pwtext.Get[string](doc, "tag1"))
}

func TestGet_ZeroOnFailure(t *testing.T) {
	t.Parallel()

	doc := pwtext.New(sample)

	assert.Zero(t, pwtext.Get[int](doc, "tag1"), "non-numeric value")
	assert.Zero(t, pwtext.Get[int](doc, "missing"), "missing key")
	assert.Empty(t, pwtext.Get[string](doc, "missing"))
	assert.False(t, pwtext.Get[bool](doc, "tag1"))
}

func TestLookup(t *testing.T) {
	t.Parallel()

	doc := pwtext.New(`name "two words"; port 8080; ratio 0.25; enabled true; small 300; empty "";`)

	t.Run("string is passed through unchanged", func(t *testing.T) {
		t.Parallel()

		value, ok := pwtext.Lookup[string](doc, "name")

		require.True(t, ok)
		assert.Equal(t, "two words", value)
	})

	t.Run("integer", func(t *testing.T) {
		t.Parallel()

		value, ok := pwtext.Lookup[int](doc, "port")

		require.True(t, ok)
		assert.Equal(t, 8080, value)
	})

	t.Run("float", func(t *testing.T) {
		t.Parallel()

		value, ok := pwtext.Lookup[float64](doc, "ratio")

		require.True(t, ok)
		assert.InDelta(t, 0.25, value, 1e-9)
	})

	t.Run("bool", func(t *testing.T) {
		t.Parallel()

		value, ok := pwtext.Lookup[bool](doc, "enabled")

		require.True(t, ok)
		assert.True(t, value)
	})

	t.Run("non-numeric text as integer", func(t *testing.T) {
		t.Parallel()

		value, ok := pwtext.Lookup[int](doc, "name")

		assert.False(t, ok)
		assert.Zero(t, value)
	})

	t.Run("overflow", func(t *testing.T) {
		t.Parallel()

		_, ok := pwtext.Lookup[uint8](doc, "small")

		assert.False(t, ok)
	})

	t.Run("empty value as integer", func(t *testing.T) {
		t.Parallel()

		_, ok := pwtext.Lookup[int](doc, "empty")

		assert.False(t, ok)
	})

	t.Run("empty value as string", func(t *testing.T) {
		t.Parallel()

		value, ok := pwtext.Lookup[string](doc, "empty")

		assert.True(t, ok)
		assert.Empty(t, value)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		_, ok := pwtext.Lookup[string](doc, "missing")

		assert.False(t, ok)
	})
}

func TestSet(t *testing.T) {
	t.Parallel()

	doc := pwtext.New(sample)

	pwtext.Set(doc, "count", 42)
	pwtext.Set(doc, "ratio", 2.5)
	pwtext.Set(doc, "enabled", true)
	pwtext.Set(doc, "label", " spaced out ")
	pwtext.Set(doc, "tag2", int8(-3))

	assert.Equal(t, "42", doc.Value("count"))
	assert.Equal(t, "2.5", doc.Value("ratio"))
	assert.Equal(t, "true", doc.Value("enabled"))
	assert.Equal(t, " spaced out ", doc.Value("label"))
	assert.Equal(t, "-3", doc.Value("tag2"))

	assert.Equal(t, 42, pwtext.Get[int](doc, "count"))
	assert.True(t, pwtext.Get[bool](doc, "enabled"))
	assert.Equal(t, " spaced out ", pwtext.Get[string](doc, "label"))
	assert.Equal(t, int8(-3), pwtext.Get[int8](doc, "tag2"))
}
