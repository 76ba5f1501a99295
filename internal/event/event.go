// internal/event/event.go
package event

import (
	"github.com/bethropolis/vie/internal/input"
	"github.com/bethropolis/vie/internal/types"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeBufferModified // buffer content changed
	TypeCursorMoved    // cursor position changed
	TypeModeChanged    // Normal <-> Insert

	TypeAppReady // application initialized, first frame drawn
	TypeAppQuit  // fired just before the loop exits
)

func (t Type) String() string {
	switch t {
	case TypeBufferModified:
		return "buffer_modified"
	case TypeCursorMoved:
		return "cursor_moved"
	case TypeModeChanged:
		return "mode_changed"
	case TypeAppReady:
		return "app_ready"
	case TypeAppQuit:
		return "app_quit"
	default:
		return "unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData names the action that changed the buffer.
type BufferModifiedData struct {
	Action    input.Action
	LineCount int
}

// CursorMovedData contains the new absolute cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// ModeChangedData carries both ends of a mode transition.
type ModeChangedData struct {
	From input.Mode
	To   input.Mode
}

type AppReadyData struct {
	FilePath string
}

type AppQuitData struct{}
