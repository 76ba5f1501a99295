package statusbar

import (
	"strings"
	"testing"

	"github.com/bethropolis/vie/internal/input"
	"github.com/bethropolis/vie/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
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

func TestText(t *testing.T) {
	info := Info{Name: "notes.txt", Position: types.Position{Line: 2, Col: 4}, LineCount: 10}
	assert.Equal(t, " notes.txt -- Line: 3, Col: 5 -- 10 lines", Text(info))

	assert.Contains(t, Text(Info{}), "[No Name]")
}

func TestDraw_LastRow(t *testing.T) {
	s := newScreen(t, 60, 3)
	sb := New(DefaultConfig())

	sb.Draw(s, 60, 3, Info{Name: "a.txt", Mode: input.ModeInsert, LineCount: 1})
	s.Show()

	row := rowText(s, 2)
	assert.True(t, strings.HasPrefix(row, " INSERT  a.txt -- Line: 1, Col: 1"), row)
	assert.Equal(t, strings.Repeat(" ", 60), rowText(s, 0))

	_, _, style, _ := s.GetContent(1, 2)
	assert.Equal(t, DefaultConfig().StyleInsert, style)
}

func TestDraw_PendingChordRightAligned(t *testing.T) {
	s := newScreen(t, 50, 2)
	sb := New(DefaultConfig())

	sb.Draw(s, 50, 2, Info{Mode: input.ModeNormal, Chord: 'd', ChordPending: true})
	s.Show()

	mainc, _, style, _ := s.GetContent(48, 1)
	assert.Equal(t, 'd', mainc)
	assert.Equal(t, DefaultConfig().StyleChord, style)
}

func TestDraw_TruncatesToWidth(t *testing.T) {
	s := newScreen(t, 10, 1)
	sb := New(DefaultConfig())
	assert.NotPanics(t, func() {
		sb.Draw(s, 10, 1, Info{Name: "a-very-long-file-name-日本.txt"})
	})
	s.Show()
	assert.True(t, strings.HasPrefix(rowText(s, 0), " NORMAL "))
}
