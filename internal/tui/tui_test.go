package tui

import (
	"strings"
	"testing"

	"github.com/bethropolis/vie/internal/input"
	"github.com/bethropolis/vie/internal/render"
	"github.com/bethropolis/vie/internal/statusbar"
	"github.com/bethropolis/vie/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTUI(t *testing.T, w, h int) (*TUI, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	tu, err := NewWithScreen(s, nil)
	require.NoError(t, err)
	s.SetSize(w, h)
	t.Cleanup(tu.Close)
	return tu, s
}

func rowText(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteString(string(c.Runes))
	}
	return b.String()
}

func TestPaint(t *testing.T) {
	tu, s := newTestTUI(t, 30, 4)
	f := render.Frame{
		Width: 30, Height: 4,
		Rows: []render.Row{
			{Line: 0, Present: true, Text: "hello"},
			{Line: 1, Present: true, Text: ""},
			{Line: 2},
		},
		Status:        statusbar.Info{Name: "x.txt", Mode: input.ModeNormal, LineCount: 2},
		CursorX:       2,
		CursorY:       0,
		CursorVisible: true,
	}

	tu.Paint(f)

	assert.Equal(t, "hello", strings.TrimRight(rowText(s, 0), " "))
	assert.Equal(t, "", strings.TrimRight(rowText(s, 1), " "))
	assert.Equal(t, "~", strings.TrimRight(rowText(s, 2), " "))
	assert.Contains(t, rowText(s, 3), "x.txt")

	x, y, visible := s.GetCursor()
	assert.Equal(t, 2, x)
	assert.Equal(t, 0, y)
	assert.True(t, visible)

	_, _, style, _ := s.GetContent(0, 0)
	assert.Equal(t, theme.ComfortDark.Styles[theme.StyleDefault], style)
}

func TestPaint_ClipsAndHidesCursor(t *testing.T) {
	tu, s := newTestTUI(t, 5, 2)
	tu.Paint(render.Frame{
		Width: 5, Height: 2,
		Rows: []render.Row{{Present: true, Text: "ab日本語"}},
	})

	want := map[int]rune{0: 'a', 1: 'b', 2: '日', 4: ' '}
	for x, r := range want {
		mainc, _, _, _ := s.GetContent(x, 0)
		assert.Equal(t, r, mainc, "column %d", x)
	}
	_, _, visible := s.GetCursor()
	assert.False(t, visible)
}

func TestDrawLine_CombiningRunes(t *testing.T) {
	_, s := newTestTUI(t, 10, 1)
	drawLine(s, 0, 10, "e\u0301x", tcell.StyleDefault)
	s.Show()

	mainc, combc, _, _ := s.GetContent(0, 0)
	assert.Equal(t, 'e', mainc)
	assert.Equal(t, []rune{'\u0301'}, combc)
	mainc, _, _, _ = s.GetContent(1, 0)
	assert.Equal(t, 'x', mainc)
}

func TestDrawLine_CursorColumnMatchesPainter(t *testing.T) {
	_, s := newTestTUI(t, 10, 1)
	line := "\u263a\ufe0fx"
	drawLine(s, 0, 10, line, tcell.StyleDefault)
	s.Show()

	col := render.VisualColumn([]byte(line), 2, 4)
	mainc, _, _, _ := s.GetContent(col, 0)
	assert.Equal(t, 'x', mainc, "x is drawn where the cursor column points")

	mainc, combc, _, _ := s.GetContent(0, 0)
	assert.Equal(t, '\u263a', mainc)
	assert.Equal(t, []rune{'\ufe0f'}, combc)
}
