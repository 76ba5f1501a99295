// internal/buffer/buffer.go
package buffer

import "errors"

// ErrLineOutOfRange is returned when a line index does not address an existing line.
var ErrLineOutOfRange = errors.New("line index out of range")

// Buffer is the document as an ordered sequence of lines.
// Every column is a rune index; every line index is absolute.
type Buffer interface {
	Load(filePath string) error
	Name() string
	Bytes() []byte

	LineCount() int
	LineLength(index int) int
	Line(index int) ([]byte, error)
	RuneAt(col, line int) (rune, bool)

	InsertChar(col, line int, r rune) bool
	InsertBytes(col, line int, raw []byte) bool
	RemoveChar(col, line int) ([]byte, bool)
	InsertLine(index int, content []byte) bool
	RemoveLine(index int) bool
}
