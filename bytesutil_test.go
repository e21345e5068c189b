package bdrain_test

import (
	"testing"

	"github.com/advdv/bdrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToString(t *testing.T) {
	t.Run("valid utf-8", func(t *testing.T) {
		got, ok := bdrain.BytesToString([]byte("Hello, World!"))
		require.True(t, ok)
		assert.Equal(t, "Hello, World!", got)
	})

	t.Run("multi-byte text", func(t *testing.T) {
		got, ok := bdrain.BytesToString([]byte("héllo €"))
		require.True(t, ok)
		assert.Equal(t, "héllo €", got)
	})

	t.Run("invalid utf-8 is absent, not an error", func(t *testing.T) {
		got, ok := bdrain.BytesToString([]byte{0xFF, 0xFF, 0xFF})
		assert.False(t, ok)
		assert.Empty(t, got)
	})

	t.Run("empty input", func(t *testing.T) {
		got, ok := bdrain.BytesToString(nil)
		require.True(t, ok)
		assert.Empty(t, got)
	})
}

func TestConcatBytes(t *testing.T) {
	t.Run("order preserved", func(t *testing.T) {
		got := bdrain.ConcatBytes([][]byte{[]byte("Hello"), []byte(", "), []byte("World!")})
		assert.Equal(t, []byte("Hello, World!"), got)
	})

	t.Run("empty input", func(t *testing.T) {
		got := bdrain.ConcatBytes(nil)
		require.NotNil(t, got)
		assert.Empty(t, got)

		assert.Empty(t, bdrain.ConcatBytes([][]byte{}))
	})

	t.Run("empty chunks in between", func(t *testing.T) {
		got := bdrain.ConcatBytes([][]byte{[]byte("a"), nil, []byte("b"), {}, []byte("c")})
		assert.Equal(t, []byte("abc"), got)
	})

	t.Run("result does not alias the input", func(t *testing.T) {
		chunk := []byte("abc")
		got := bdrain.ConcatBytes([][]byte{chunk})
		chunk[0] = 'z'
		assert.Equal(t, []byte("abc"), got)
	})
}

func TestDefaultBufferSize(t *testing.T) {
	assert.Equal(t, 8192, bdrain.DefaultBufferSize)
}
