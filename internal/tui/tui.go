// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/bethropolis/vie/internal/render"
	"github.com/bethropolis/vie/internal/statusbar"
	"github.com/bethropolis/vie/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen    tcell.Screen
	theme     *theme.Theme
	statusBar *statusbar.StatusBar
}

// New creates and initializes the terminal screen.
func New(th *theme.Theme) (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s, th)
}

// NewWithScreen initializes s, which may be a tcell.SimulationScreen.
func NewWithScreen(s tcell.Screen, th *theme.Theme) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	if th == nil {
		th = theme.Resolve("")
	}
	s.SetStyle(th.GetStyle(theme.StyleDefault))
	return &TUI{
		screen:    s,
		theme:     th,
		statusBar: statusbar.New(statusbar.ConfigFromTheme(th)),
	}, nil
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent blocks until the next event. It returns nil once the screen is finalized.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// GetScreen provides direct access (use with caution).
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}

// Paint draws a frame and shows it.
func (t *TUI) Paint(f render.Frame) {
	t.screen.Clear()

	textStyle := t.theme.GetStyle(theme.StyleDefault)
	emptyStyle := t.theme.GetStyle(theme.StyleEmptyLine)
	for y, row := range f.Rows {
		if !row.Present {
			t.screen.SetContent(0, y, '~', nil, emptyStyle)
			continue
		}
		drawLine(t.screen, y, f.Width, row.Text, textStyle)
	}

	t.statusBar.Draw(t.screen, f.Width, f.Height, f.Status)

	if f.CursorVisible {
		t.screen.ShowCursor(f.CursorX, f.CursorY)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
}
