package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Internal(t *testing.T) {
	r := NewRegister(false)
	_, ok := r.Get()
	assert.False(t, ok)

	r.Set("")
	text, ok := r.Get()
	require.True(t, ok, "an empty line is still content")
	assert.Equal(t, "", text)

	r.Set("hello")
	text, ok = r.Get()
	require.True(t, ok)
	assert.Equal(t, "hello", text)
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "a", firstLine("a\nb"))
	assert.Equal(t, "a", firstLine("a\r\nb"))
	assert.Equal(t, "abc", firstLine("abc"))
}
