// internal/tui/drawing.go
package tui

import (
	"github.com/bethropolis/vie/internal/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// drawLine paints text on row y, clipped at width. Each grapheme cluster takes
// one cell run, its trailing runes attached as combining characters.
func drawLine(screen tcell.Screen, y, width int, text string, style tcell.Style) {
	x := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		w := utils.ClusterWidth(runes)
		if x+w > width {
			return
		}
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
}
