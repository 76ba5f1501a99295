package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLine_AbsentOutsideRange(t *testing.T) {
	sb := NewSliceBufferFromLines("", "abc", "")

	got, err := sb.Line(0)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got, err = sb.Line(1)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = sb.Line(2)
	assert.True(t, errors.Is(err, ErrLineOutOfRange))
	_, err = sb.Line(-1)
	assert.True(t, errors.Is(err, ErrLineOutOfRange))
}

func TestInsertChar_ShiftsRight(t *testing.T) {
	sb := NewSliceBufferFromLines("", "ac")
	require.True(t, sb.InsertChar(1, 0, 'b'))
	assert.Equal(t, []string{"abc"}, sb.Lines())
}

func TestInsertChar_AppendsOneLineAtEnd(t *testing.T) {
	sb := NewSliceBuffer()
	require.True(t, sb.InsertChar(0, 0, 'x'))
	assert.Equal(t, []string{"x"}, sb.Lines())

	require.True(t, sb.InsertChar(5, 1, 'y'))
	assert.Equal(t, []string{"x", "y"}, sb.Lines())
}

func TestInsertChar_GapIsNoOp(t *testing.T) {
	sb := NewSliceBufferFromLines("", "a")
	assert.False(t, sb.InsertChar(0, 2, 'z'))
	assert.Equal(t, []string{"a"}, sb.Lines())
}

func TestInsertChar_MultiByte(t *testing.T) {
	sb := NewSliceBufferFromLines("", "héllo")
	require.True(t, sb.InsertChar(2, 0, 'ü'))
	assert.Equal(t, []string{"héüllo"}, sb.Lines())
	assert.Equal(t, 6, sb.LineLength(0))
}

func TestRemoveChar(t *testing.T) {
	sb := NewSliceBufferFromLines("", "héllo")
	removed, ok := sb.RemoveChar(1, 0)
	require.True(t, ok)
	assert.Equal(t, []byte("é"), removed)
	assert.Equal(t, []string{"hllo"}, sb.Lines())

	_, ok = sb.RemoveChar(4, 0)
	assert.False(t, ok, "col == len")
	_, ok = sb.RemoveChar(0, 1)
	assert.False(t, ok, "absent line")
	assert.Equal(t, []string{"hllo"}, sb.Lines())
}

func TestRemoveChar_InvalidUTF8RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.txt")
	require.NoError(t, os.WriteFile(path, []byte("\xffab"), 0o644))

	sb := NewSliceBuffer()
	require.NoError(t, sb.Load(path))

	removed, ok := sb.RemoveChar(0, 0)
	require.True(t, ok)
	assert.Equal(t, []byte{0xff}, removed)
	assert.Equal(t, "ab", string(sb.Bytes()))

	require.True(t, sb.InsertBytes(0, 0, removed))
	assert.Equal(t, []byte("\xffab"), sb.Bytes())
}

func TestRuneAt(t *testing.T) {
	sb := NewSliceBufferFromLines("", "aé")
	r, ok := sb.RuneAt(1, 0)
	require.True(t, ok)
	assert.Equal(t, 'é', r)

	_, ok = sb.RuneAt(2, 0)
	assert.False(t, ok)
	_, ok = sb.RuneAt(0, 3)
	assert.False(t, ok)
}

func TestInsertAndRemoveLine(t *testing.T) {
	sb := NewSliceBufferFromLines("", "a", "c")
	require.True(t, sb.InsertLine(1, []byte("b")))
	require.True(t, sb.InsertLine(3, []byte("d")))
	require.True(t, sb.InsertLine(0, nil))
	assert.Equal(t, []string{"", "a", "b", "c", "d"}, sb.Lines())

	assert.False(t, sb.InsertLine(6, nil))
	assert.False(t, sb.InsertLine(-1, nil))

	require.True(t, sb.RemoveLine(0))
	require.True(t, sb.RemoveLine(3))
	assert.False(t, sb.RemoveLine(3))
	assert.Equal(t, []string{"a", "b", "c"}, sb.Lines())
}

func TestInsertLine_CopiesContent(t *testing.T) {
	sb := NewSliceBuffer()
	content := []byte("abc")
	require.True(t, sb.InsertLine(0, content))
	content[0] = 'X'
	assert.Equal(t, []string{"abc"}, sb.Lines())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\r\ntwo\n\nfour"), 0o644))

	sb := NewSliceBuffer()
	require.NoError(t, sb.Load(path))
	assert.Equal(t, path, sb.Name())
	assert.Equal(t, []string{"one", "two", "", "four"}, sb.Lines())
	assert.Equal(t, "one\ntwo\n\nfour", string(sb.Bytes()))
}

func TestLoad_EmptyFileHasNoLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	sb := NewSliceBuffer()
	require.NoError(t, sb.Load(path))
	assert.Equal(t, 0, sb.LineCount())
}

func TestLoad_MissingFileKeepsName(t *testing.T) {
	sb := NewSliceBufferFromLines("old", "stale")
	path := filepath.Join(t.TempDir(), "missing.txt")

	err := sb.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, path, sb.Name())
	assert.Equal(t, 0, sb.LineCount())
}

func TestInsertThenRemoveRestoresLine(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		line := rapid.StringN(0, 20, -1).Draw(rt, "line")
		sb := NewSliceBufferFromLines("", line)
		col := rapid.IntRange(0, sb.LineLength(0)).Draw(rt, "col")
		r := rapid.Rune().Draw(rt, "rune")

		require.True(rt, sb.InsertChar(col, 0, r))
		got, ok := sb.RuneAt(col, 0)
		require.True(rt, ok)
		require.Equal(rt, r, got)
		_, ok = sb.RemoveChar(col, 0)
		require.True(rt, ok)

		out, err := sb.Line(0)
		require.NoError(rt, err)
		require.Equal(rt, line, string(out))
	})
}
