// internal/core/editor.go
package core

import (
	"github.com/bethropolis/vie/internal/buffer"
	"github.com/bethropolis/vie/internal/core/clipboard"
	"github.com/bethropolis/vie/internal/core/cursor"
	"github.com/bethropolis/vie/internal/core/history"
	"github.com/bethropolis/vie/internal/event"
	"github.com/bethropolis/vie/internal/input"
	"github.com/bethropolis/vie/internal/logger"
	"github.com/bethropolis/vie/internal/modehandler"
	"github.com/bethropolis/vie/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Editor is the single mutator of the session state. Every change to the
// buffer, the cursor or the mode goes through Apply.
type Editor struct {
	buffer       buffer.Buffer
	cursor       *cursor.Manager
	history      *history.Stack
	modes        *modehandler.ModeHandler
	register     *clipboard.Register
	eventManager *event.Manager
}

// NewEditor creates an Editor over buf. A nil mode handler gets the default
// key map and a nil register is internal only.
func NewEditor(buf buffer.Buffer, modes *modehandler.ModeHandler, register *clipboard.Register) *Editor {
	if modes == nil {
		modes = modehandler.New(nil)
	}
	if register == nil {
		register = clipboard.NewRegister(false)
	}
	return &Editor{
		buffer:   buf,
		cursor:   cursor.NewManager(buf),
		history:  history.NewStack(),
		modes:    modes,
		register: register,
	}
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

func (e *Editor) Buffer() buffer.Buffer {
	return e.buffer
}

func (e *Editor) Cursor() *cursor.Manager {
	return e.cursor
}

func (e *Editor) History() *history.Stack {
	return e.history
}

// Mode returns the current input mode.
func (e *Editor) Mode() input.Mode {
	return e.modes.Mode()
}

// PendingChord exposes the armed chord key for the status line.
func (e *Editor) PendingChord() (rune, bool) {
	return e.modes.PendingChord()
}

// SetViewSize forwards a terminal resize to the cursor manager.
func (e *Editor) SetViewSize(width, height int) {
	e.cursor.SetViewSize(width, height)
	e.cursor.Normalize()
}

// Normalize clamps the cursor onto the buffer.
func (e *Editor) Normalize() {
	e.cursor.Normalize()
}

// HandleKey resolves a key in the current mode and applies the result.
// It reports whether the session should end.
func (e *Editor) HandleKey(ev *tcell.EventKey) bool {
	action, ok := e.modes.Resolve(ev)
	if !ok {
		return false
	}
	return e.Apply(action)
}

// Apply executes one action. It reports whether the session should end.
func (e *Editor) Apply(a input.Action) bool {
	before := e.cursor.Position()
	modeBefore := e.modes.Mode()
	modified := false

	logger.DebugTagf("dispatch", "Editor: applying %s at %v", a, before)

	switch a.Kind {
	case input.ActionQuit:
		return true

	case input.ActionMoveUp:
		e.cursor.MoveUp()
	case input.ActionMoveDown:
		e.cursor.MoveDown()
	case input.ActionMoveLeft:
		e.cursor.MoveLeft()
	case input.ActionMoveRight:
		e.cursor.MoveRight()
	case input.ActionMoveHome:
		e.cursor.Home()
	case input.ActionMoveEnd:
		e.cursor.End()
	case input.ActionMovePageUp:
		e.cursor.PageUp()
	case input.ActionMovePageDown:
		e.cursor.PageDown()

	case input.ActionEnterMode:
		e.modes.SetMode(a.Mode)

	case input.ActionInsertChar:
		modified = e.insertChar(a.Rune)
	case input.ActionDeleteChar:
		modified = e.deleteChar()
	case input.ActionDeleteLine:
		modified = e.deleteLine()
	case input.ActionInsertLineAbove:
		modified = e.openLine(e.cursor.Line(), nil)
	case input.ActionInsertLineBelow:
		modified = e.openLine(e.belowCursor(), nil)
	case input.ActionYankLine:
		e.yankLine()
	case input.ActionPutLine:
		modified = e.putLine()
	case input.ActionUndo:
		modified = e.undo()

	default:
		logger.Debugf("Editor: ignoring action %s", a)
	}

	e.cursor.Normalize()
	e.publish(a, before, modeBefore, modified)
	return false
}

func (e *Editor) insertChar(r rune) bool {
	pos := e.cursor.Position()
	if !e.buffer.InsertChar(pos.Col, pos.Line, r) {
		logger.Debugf("Editor: insert %q at %v skipped", r, pos)
		return false
	}
	e.cursor.Set(cursor.Cursor{Col: pos.Col + 1, Row: e.cursor.Cursor().Row}, e.cursor.ScrollOffset())
	return true
}

func (e *Editor) deleteChar() bool {
	pos := e.cursor.Position()
	r, ok := e.buffer.RuneAt(pos.Col, pos.Line)
	if !ok {
		logger.Debugf("Editor: nothing to delete at %v", pos)
		return false
	}
	raw, ok := e.buffer.RemoveChar(pos.Col, pos.Line)
	if !ok {
		logger.Debugf("Editor: nothing to delete at %v", pos)
		return false
	}
	e.history.Push(input.ReinsertRaw(pos.Col, pos.Line, r, raw))
	return true
}

func (e *Editor) deleteLine() bool {
	line := e.cursor.Line()
	content, err := e.buffer.Line(line)
	if err != nil {
		logger.Debugf("Editor: delete line %d: %v", line, err)
		return false
	}
	text := string(content)
	if !e.buffer.RemoveLine(line) {
		return false
	}
	e.history.Push(input.ReinsertLine(line, text))
	e.register.Set(text)
	return true
}

// belowCursor is the index just under the cursor line, or 0 on an empty buffer.
func (e *Editor) belowCursor() int {
	if e.buffer.LineCount() == 0 {
		return 0
	}
	return e.cursor.Line() + 1
}

// openLine inserts content as a new line at index and moves the cursor to its start.
func (e *Editor) openLine(index int, content []byte) bool {
	if e.buffer.LineCount() == 0 {
		index = 0
	}
	if !e.buffer.InsertLine(index, content) {
		logger.Debugf("Editor: cannot open line at %d", index)
		return false
	}
	e.cursor.SetAbsolute(index, 0)
	return true
}

func (e *Editor) yankLine() {
	line := e.cursor.Line()
	content, err := e.buffer.Line(line)
	if err != nil {
		logger.Debugf("Editor: yank line %d: %v", line, err)
		return
	}
	e.register.Set(string(content))
}

func (e *Editor) putLine() bool {
	text, ok := e.register.Get()
	if !ok {
		logger.Debugf("Editor: register empty, nothing to put")
		return false
	}
	return e.openLine(e.belowCursor(), []byte(text))
}

func (e *Editor) undo() bool {
	change, ok := e.history.Undo(e.buffer)
	if !ok {
		return false
	}
	switch change.Kind {
	case input.ActionReinsertChar:
		e.cursor.SetAbsolute(change.Line, change.Col)
	case input.ActionReinsertLine:
		e.cursor.SetAbsolute(change.Line, 0)
	}
	return true
}

func (e *Editor) publish(a input.Action, before types.Position, modeBefore input.Mode, modified bool) {
	if e.eventManager == nil {
		return
	}
	if mode := e.modes.Mode(); mode != modeBefore {
		e.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{From: modeBefore, To: mode})
	}
	if modified {
		e.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Action: a, LineCount: e.buffer.LineCount()})
	}
	if after := e.cursor.Position(); after != before {
		e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: after})
	}
}
