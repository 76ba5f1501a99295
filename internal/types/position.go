// internal/types/position.go
package types

// Position is an absolute location in the buffer.
// Line is the 0-based line index, Col the 0-based rune index within the line.
type Position struct {
	Line int
	Col  int
}
