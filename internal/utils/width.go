package utils

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ClusterWidth is the number of terminal cells a grapheme cluster occupies.
// The screen sizes a cell from its first rune only and never goes below one
// cell, so every column computation uses this instead of uniseg's widths.
func ClusterWidth(cluster []rune) int {
	if len(cluster) == 0 {
		return 0
	}
	if w := runewidth.RuneWidth(cluster[0]); w > 1 {
		return w
	}
	return 1
}

// StringWidth sums ClusterWidth over the grapheme clusters of s.
func StringWidth(s string) int {
	width := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		width += ClusterWidth(gr.Runes())
	}
	return width
}
