package cursor

import (
	"github.com/bethropolis/vie/internal/config"
	"github.com/bethropolis/vie/internal/logger"
	"github.com/bethropolis/vie/internal/types"
)

// Lines is the read-only view of the document the cursor manager needs.
type Lines interface {
	LineCount() int
	LineLength(index int) int
}

// Cursor is the on-screen cursor. Row is relative to the top of the viewport.
type Cursor struct {
	Col int
	Row int
}

// Manager keeps the cursor and the scroll offset consistent with the
// buffer size and the terminal size.
//
// The view height is the full terminal height. Its last row belongs to the
// status line, so the cursor row stays in [0, height-2].
type Manager struct {
	lines      Lines
	cursor     Cursor
	scroll     int // sv: absolute index of the first visible line
	viewWidth  int
	viewHeight int
}

// NewManager creates a cursor manager over lines with the cursor at the origin.
func NewManager(lines Lines) *Manager {
	return &Manager{lines: lines}
}

// SetViewSize updates the view dimensions. If the cursor row no longer fits
// above the status line, the view scrolls so the same line stays under the cursor.
func (m *Manager) SetViewSize(width, height int) {
	m.viewWidth = width
	m.viewHeight = height

	if maxRow := m.lastRow(); m.cursor.Row > maxRow {
		m.scroll += m.cursor.Row - maxRow
		m.cursor.Row = maxRow
	}
	logger.DebugTagf("viewport", "view size %dx%d, row=%d sv=%d", width, height, m.cursor.Row, m.scroll)
}

// ViewSize returns the cached terminal dimensions.
func (m *Manager) ViewSize() (int, int) {
	return m.viewWidth, m.viewHeight
}

// TextRows is the number of rows available to buffer lines.
func (m *Manager) TextRows() int {
	if m.viewHeight <= config.StatusBarHeight {
		return 0
	}
	return m.viewHeight - config.StatusBarHeight
}

// lastRow is the lowest row the cursor may occupy.
func (m *Manager) lastRow() int {
	if rows := m.TextRows(); rows > 0 {
		return rows - 1
	}
	return 0
}

func (m *Manager) Cursor() Cursor {
	return m.cursor
}

func (m *Manager) ScrollOffset() int {
	return m.scroll
}

// Line is the absolute buffer line under the cursor.
func (m *Manager) Line() int {
	return m.cursor.Row + m.scroll
}

// Position returns the absolute cursor position.
func (m *Manager) Position() types.Position {
	return types.Position{Line: m.Line(), Col: m.cursor.Col}
}

// Set places the cursor at a viewport-relative position without clamping.
func (m *Manager) Set(c Cursor, scroll int) {
	m.cursor = c
	m.scroll = scroll
}

// SetAbsolute puts the cursor on an absolute line and column, scrolling the
// view by the minimum needed to keep the line above the status line.
func (m *Manager) SetAbsolute(line, col int) {
	if line < 0 {
		line = 0
	}
	switch {
	case line < m.scroll:
		m.scroll = line
	case line-m.scroll > m.lastRow():
		m.scroll = line - m.lastRow()
	}
	m.cursor.Row = line - m.scroll
	m.cursor.Col = col
	m.ClampColumn()
}

// ClampColumn keeps the column within the current line.
func (m *Manager) ClampColumn() {
	if m.cursor.Col < 0 {
		m.cursor.Col = 0
	}
	if n := m.lines.LineLength(m.Line()); m.cursor.Col > n {
		m.cursor.Col = n
	}
}

// ClampRow pulls the cursor back onto the buffer after it shrank.
func (m *Manager) ClampRow() {
	count := m.lines.LineCount()
	if count == 0 {
		m.cursor.Row = 0
		m.scroll = 0
		return
	}
	if m.scroll >= count {
		m.scroll = count - 1
		m.cursor.Row = 0
		return
	}
	if m.scroll+m.cursor.Row >= count {
		m.cursor.Row = count - 1 - m.scroll
	}
}

// Normalize runs both clamps; called once per loop iteration before drawing.
func (m *Manager) Normalize() {
	m.ClampRow()
	m.ClampColumn()
}

// MoveUp moves one line up, scrolling the view when already on the top row.
func (m *Manager) MoveUp() {
	if m.cursor.Row == 0 {
		if m.scroll > 0 {
			m.scroll--
		}
		return
	}
	m.cursor.Row--
}

// MoveDown moves one line down if there is a next line, scrolling instead of
// stepping onto the status row.
func (m *Manager) MoveDown() {
	if m.Line()+1 >= m.lines.LineCount() {
		return
	}
	m.cursor.Row++
	if m.cursor.Row >= m.viewHeight-1 {
		m.cursor.Row--
		m.scroll++
	}
}

func (m *Manager) MoveLeft() {
	if m.cursor.Col > 0 {
		m.cursor.Col--
	}
}

func (m *Manager) MoveRight() {
	if m.cursor.Col < m.lines.LineLength(m.Line()) {
		m.cursor.Col++
	}
}

// PageUp snaps to the top row of the current view.
func (m *Manager) PageUp() {
	m.cursor.Row = 0
}

// PageDown snaps to the bottom text row of the current view.
func (m *Manager) PageDown() {
	m.cursor.Row = m.lastRow()
}

func (m *Manager) Home() {
	m.cursor.Col = 0
}

func (m *Manager) End() {
	m.cursor.Col = m.lines.LineLength(m.Line())
}
