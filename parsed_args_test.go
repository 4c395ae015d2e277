package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsedArgs(t *testing.T) {
	t.Parallel()

	t.Run("slots default to registration order", func(t *testing.T) {
		t.Parallel()
		p := New().
			WithArgument("-v", Flag(nil)).
			WithArgument("-message", String(nil)).
			Build()

		parsed, err := p.Parse([]string{"-message", "hi", "-v"})
		require.NoError(t, err)
		require.Equal(t, 2, parsed.Len())
		assert.True(t, parsed.Get(0).Bool())
		assert.Equal(t, "hi", parsed.Get(1).String())
	})
	t.Run("explicit slot assignment", func(t *testing.T) {
		t.Parallel()
		p := New().
			WithArgument("-v", Flag(nil), At(3)).
			WithArgument("-message", String(nil), At(0)).
			Build()

		parsed, err := p.Parse([]string{"-v", "-message", "hi"})
		require.NoError(t, err)
		require.Equal(t, 4, parsed.Len(), "slots extend to the largest assigned index")
		assert.Equal(t, "hi", parsed.Get(0).String())
		assert.True(t, parsed.Get(3).Bool())
		assert.False(t, parsed.Get(1).Present())
	})
	t.Run("unmatched arguments leave absent slots", func(t *testing.T) {
		t.Parallel()
		p := New().
			WithArgument("-v", Flag(nil)).
			WithArgument("-message", String(nil)).
			Build()

		parsed, err := p.Parse([]string{"-v"})
		require.NoError(t, err)
		assert.True(t, parsed.Get(0).Present())
		assert.False(t, parsed.Get(1).Present())
		assert.Equal(t, "fallback", parsed.GetOrDefault(1, "fallback"))
		assert.Equal(t, true, parsed.GetOrDefault(0, false))
	})
	t.Run("out of range access", func(t *testing.T) {
		t.Parallel()
		parsed := NewParsedArgs(1)
		assert.False(t, parsed.Get(-1).Present())
		assert.False(t, parsed.Get(5).Present())
		parsed.Set(5, BoolValue(true)) // ignored
		assert.Equal(t, 1, parsed.Len())
	})
	t.Run("values returns a copy", func(t *testing.T) {
		t.Parallel()
		parsed := NewParsedArgs(2)
		parsed.Set(0, StringValue("a"))
		values := parsed.Values()
		require.Len(t, values, 2)
		values[0] = StringValue("mutated")
		assert.Equal(t, "a", parsed.Get(0).String())
	})
}

func TestGet(t *testing.T) {
	t.Parallel()

	t.Run("typed access", func(t *testing.T) {
		t.Parallel()
		parsed := NewParsedArgs(2)
		parsed.Set(0, BoolValue(true))
		parsed.Set(1, StringValue("hello"))
		assert.True(t, Get[bool](parsed, 0))
		assert.Equal(t, "hello", Get[string](parsed, 1))
	})
	t.Run("absent slot yields zero value", func(t *testing.T) {
		t.Parallel()
		parsed := NewParsedArgs(1)
		assert.False(t, Get[bool](parsed, 0))
		assert.Equal(t, "", Get[string](parsed, 0))
	})
	t.Run("type mismatch panics", func(t *testing.T) {
		t.Parallel()
		parsed := NewParsedArgs(1)
		parsed.Set(0, StringValue("hello"))
		defer func() {
			r := recover()
			require.NotNil(t, r)
			assert.Contains(t, r.(string), "type mismatch at index 0")
		}()
		_ = Get[bool](parsed, 0)
	})
}
