package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneIndexToByteOffset(t *testing.T) {
	line := []byte("aé日b")
	assert.Equal(t, 0, RuneIndexToByteOffset(line, 0))
	assert.Equal(t, 1, RuneIndexToByteOffset(line, 1))
	assert.Equal(t, 3, RuneIndexToByteOffset(line, 2))
	assert.Equal(t, 6, RuneIndexToByteOffset(line, 3))
	assert.Equal(t, 7, RuneIndexToByteOffset(line, 4), "end of line")
	assert.Equal(t, -1, RuneIndexToByteOffset(line, 5))
	assert.Equal(t, 0, RuneIndexToByteOffset(nil, 0))
}

func TestRuneCount(t *testing.T) {
	assert.Equal(t, 4, RuneCount([]byte("aé日b")))
	assert.Equal(t, 0, RuneCount(nil))
}

func TestSplitCommaList(t *testing.T) {
	assert.Nil(t, SplitCommaList(""))
	assert.Equal(t, []string{"a", "b"}, SplitCommaList(" a, ,b ,"))
}
