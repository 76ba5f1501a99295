// Package render computes what the screen should show for an editor state.
// It does not touch the terminal.
package render

import (
	"strings"

	"github.com/bethropolis/vie/internal/core"
	"github.com/bethropolis/vie/internal/statusbar"
	"github.com/bethropolis/vie/internal/utils"
	"github.com/rivo/uniseg"
)

// Row is one text row of the viewport.
type Row struct {
	Line    int    // absolute buffer line
	Present bool   // false past the end of the buffer
	Text    string // display text, tabs expanded
}

// Frame is a complete picture of one iteration of the loop.
type Frame struct {
	Width, Height int
	Rows          []Row
	Status        statusbar.Info

	CursorX, CursorY int
	CursorVisible    bool
}

// Compute builds the frame for the editor's current state. Rows cover the
// viewport from the scroll offset down to the row above the status line.
func Compute(ed *core.Editor, tabWidth int) Frame {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	cur := ed.Cursor()
	buf := ed.Buffer()
	width, height := cur.ViewSize()

	f := Frame{Width: width, Height: height}

	scroll := cur.ScrollOffset()
	for y := 0; y < cur.TextRows(); y++ {
		row := Row{Line: scroll + y}
		if content, err := buf.Line(row.Line); err == nil {
			row.Present = true
			row.Text = ExpandTabs(content, tabWidth)
		}
		f.Rows = append(f.Rows, row)
	}

	pos := cur.Position()
	chord, pending := ed.PendingChord()
	f.Status = statusbar.Info{
		Name:         buf.Name(),
		Mode:         ed.Mode(),
		Position:     pos,
		LineCount:    buf.LineCount(),
		Chord:        chord,
		ChordPending: pending,
	}

	f.CursorY = cur.Cursor().Row
	if content, err := buf.Line(pos.Line); err == nil {
		f.CursorX = VisualColumn(content, pos.Col, tabWidth)
	}
	f.CursorVisible = f.CursorY < cur.TextRows() && f.CursorX < width
	return f
}

// VisualColumn is the screen column of rune index col in line.
func VisualColumn(line []byte, col, tabWidth int) int {
	x, idx := 0, 0
	gr := uniseg.NewGraphemes(string(line))
	for idx < col && gr.Next() {
		runes := gr.Runes()
		if runes[0] == '\t' {
			x += tabWidth - x%tabWidth
		} else {
			x += utils.ClusterWidth(runes)
		}
		idx += len(runes)
	}
	return x
}

// ExpandTabs replaces each tab with spaces up to the next tab stop.
func ExpandTabs(line []byte, tabWidth int) string {
	s := string(line)
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	x := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		if cluster == "\t" {
			n := tabWidth - x%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			x += n
			continue
		}
		b.WriteString(cluster)
		x += utils.ClusterWidth(gr.Runes())
	}
	return b.String()
}
