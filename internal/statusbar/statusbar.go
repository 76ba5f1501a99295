// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"

	"github.com/bethropolis/vie/internal/input"
	"github.com/bethropolis/vie/internal/theme"
	"github.com/bethropolis/vie/internal/types"
	"github.com/bethropolis/vie/internal/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance of the status bar.
type Config struct {
	StyleDefault tcell.Style
	StyleNormal  tcell.Style // mode tag in Normal mode
	StyleInsert  tcell.Style // mode tag in Insert mode
	StyleChord   tcell.Style // pending chord indicator
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleNormal:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		StyleInsert:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlue).Bold(true),
		StyleChord:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue),
	}
}

// ConfigFromTheme takes the status styles from a theme.
func ConfigFromTheme(th *theme.Theme) Config {
	if th == nil {
		return DefaultConfig()
	}
	return Config{
		StyleDefault: th.GetStyle(theme.StyleStatusBar),
		StyleNormal:  th.GetStyle(theme.StyleStatusBarNormal),
		StyleInsert:  th.GetStyle(theme.StyleStatusBarInsert),
		StyleChord:   th.GetStyle(theme.StyleStatusBarChord),
	}
}

// Info is everything the status line shows.
type Info struct {
	Name         string
	Mode         input.Mode
	Position     types.Position
	LineCount    int
	Chord        rune
	ChordPending bool
}

// StatusBar is the UI component for the status line.
type StatusBar struct {
	config Config
}

func New(config Config) *StatusBar {
	return &StatusBar{config: config}
}

// ModeTag is the left-hand mode indicator, e.g. " NORMAL ".
func ModeTag(m input.Mode) string {
	return " " + m.String() + " "
}

// Text builds the main status text shown after the mode tag.
func Text(info Info) string {
	name := info.Name
	if name == "" {
		name = "[No Name]"
	}
	return fmt.Sprintf(" %s -- Line: %d, Col: %d -- %d lines",
		name, info.Position.Line+1, info.Position.Col+1, info.LineCount)
}

// Draw renders the status bar on the last row of the screen.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, info Info) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, sb.config.StyleDefault)
	}

	modeStyle := sb.config.StyleNormal
	if info.Mode == input.ModeInsert {
		modeStyle = sb.config.StyleInsert
	}
	x := drawString(screen, 0, y, width, ModeTag(info.Mode), modeStyle)

	limit := width
	if info.ChordPending {
		pending := string(info.Chord) + " "
		if w := utils.StringWidth(pending); w < width-x {
			limit = width - w
			drawString(screen, limit, y, width, pending, sb.config.StyleChord)
		}
	}
	drawString(screen, x, y, limit, Text(info), sb.config.StyleDefault)
}

// drawString paints text from x up to (not including) maxX, one grapheme
// cluster per cell run, and returns the next free column.
func drawString(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		clusterWidth := utils.ClusterWidth(runes)
		if x+clusterWidth > maxX {
			break
		}
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += clusterWidth
	}
	return x
}
