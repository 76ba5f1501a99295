// internal/buffer/slice_buffer.go
package buffer

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/bethropolis/vie/internal/logger"
	"github.com/bethropolis/vie/internal/utils"
)

// SliceBuffer keeps one byte slice per line.
type SliceBuffer struct {
	lines [][]byte
	name  string
}

// NewSliceBuffer creates an empty, unnamed buffer with zero lines.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{}
}

// NewSliceBufferFromLines creates a buffer holding copies of the given lines.
func NewSliceBufferFromLines(name string, lines ...string) *SliceBuffer {
	sb := &SliceBuffer{name: name, lines: make([][]byte, 0, len(lines))}
	for _, l := range lines {
		sb.lines = append(sb.lines, []byte(l))
	}
	return sb
}

// Load reads a file into the buffer, replacing existing content.
// On failure the buffer is left empty but keeps filePath as its name;
// the error is informational only.
func (sb *SliceBuffer) Load(filePath string) error {
	sb.name = filePath
	sb.lines = nil
	if filePath == "" {
		return nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	newLines := [][]byte{}
	for scanner.Scan() {
		line := bytes.TrimSuffix(scanner.Bytes(), []byte{'\r'})
		lineCopy := make([]byte, len(line))
		copy(lineCopy, line)
		newLines = append(newLines, lineCopy)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file '%s': %w", filePath, err)
	}
	sb.lines = newLines
	logger.Debugf("Buffer: loaded %d lines from '%s'", len(sb.lines), filePath)
	return nil
}

// Name is the identity of the buffer, usually the file path it was loaded from.
func (sb *SliceBuffer) Name() string {
	return sb.name
}

// Bytes joins all lines with '\n'.
func (sb *SliceBuffer) Bytes() []byte {
	return bytes.Join(sb.lines, []byte{'\n'})
}

// Lines returns the lines as strings (copies).
func (sb *SliceBuffer) Lines() []string {
	out := make([]string, len(sb.lines))
	for i, l := range sb.lines {
		out[i] = string(l)
	}
	return out
}

func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

// LineLength is the rune length of a line, 0 for absent lines.
func (sb *SliceBuffer) LineLength(index int) int {
	if index < 0 || index >= len(sb.lines) {
		return 0
	}
	return utils.RuneCount(sb.lines[index])
}

// Line returns the content of a line.
func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line %d of %d: %w", index, len(sb.lines), ErrLineOutOfRange)
	}
	return sb.lines[index], nil
}

// RuneAt returns the character at (col, line) if it exists.
func (sb *SliceBuffer) RuneAt(col, line int) (rune, bool) {
	if line < 0 || line >= len(sb.lines) || col < 0 {
		return 0, false
	}
	l := sb.lines[line]
	off := utils.RuneIndexToByteOffset(l, col)
	if off < 0 || off >= len(l) {
		return 0, false
	}
	r, _ := utf8.DecodeRune(l[off:])
	return r, true
}

// InsertChar inserts r at col on line, shifting the rest of the line right.
// line == LineCount() appends one empty line first. A line further out is a no-op.
// A col past the end of the line inserts at the end.
func (sb *SliceBuffer) InsertChar(col, line int, r rune) bool {
	return sb.InsertBytes(col, line, utf8.AppendRune(nil, r))
}

// InsertBytes is InsertChar for an already encoded character. The bytes are
// stored as given, so a byte removed from an invalid UTF-8 line goes back unchanged.
func (sb *SliceBuffer) InsertBytes(col, line int, raw []byte) bool {
	if line < 0 || col < 0 || len(raw) == 0 {
		return false
	}
	if line > len(sb.lines) {
		logger.Debugf("Buffer: insert on line %d ignored, buffer has %d lines", line, len(sb.lines))
		return false
	}
	if line == len(sb.lines) {
		sb.lines = append(sb.lines, []byte{})
	}

	cur := sb.lines[line]
	off := utils.RuneIndexToByteOffset(cur, col)
	if off < 0 {
		off = len(cur)
	}
	updated := make([]byte, 0, len(cur)+len(raw))
	updated = append(updated, cur[:off]...)
	updated = append(updated, raw...)
	updated = append(updated, cur[off:]...)
	sb.lines[line] = updated
	return true
}

// RemoveChar deletes the character at col on line and returns its exact
// bytes. An invalid UTF-8 byte counts as one character. Out-of-range is a no-op.
func (sb *SliceBuffer) RemoveChar(col, line int) ([]byte, bool) {
	if line < 0 || line >= len(sb.lines) || col < 0 {
		return nil, false
	}
	cur := sb.lines[line]
	off := utils.RuneIndexToByteOffset(cur, col)
	if off < 0 || off >= len(cur) {
		return nil, false
	}
	_, size := utf8.DecodeRune(cur[off:])
	removed := make([]byte, size)
	copy(removed, cur[off:off+size])

	updated := make([]byte, 0, len(cur)-size)
	updated = append(updated, cur[:off]...)
	updated = append(updated, cur[off+size:]...)
	sb.lines[line] = updated
	return removed, true
}

// InsertLine inserts content as a whole line at index, index in [0, LineCount()].
func (sb *SliceBuffer) InsertLine(index int, content []byte) bool {
	if index < 0 || index > len(sb.lines) {
		return false
	}
	lineCopy := make([]byte, len(content))
	copy(lineCopy, content)

	sb.lines = append(sb.lines, nil)
	copy(sb.lines[index+1:], sb.lines[index:])
	sb.lines[index] = lineCopy
	return true
}

// RemoveLine deletes the line at index.
func (sb *SliceBuffer) RemoveLine(index int) bool {
	if index < 0 || index >= len(sb.lines) {
		return false
	}
	sb.lines = append(sb.lines[:index], sb.lines[index+1:]...)
	return true
}

var _ Buffer = (*SliceBuffer)(nil)
