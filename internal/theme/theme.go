// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/vie/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names used by the painter and the status line.
const (
	StyleDefault         = "Default"
	StyleStatusBar       = "StatusBar"
	StyleStatusBarNormal = "StatusBar.Normal"
	StyleStatusBarInsert = "StatusBar.Insert"
	StyleStatusBarChord  = "StatusBar.Chord"
	StyleEmptyLine       = "EmptyLine"
)

type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle looks up name, then its base name (the part before the first
// dot), then "Default", then tcell's default style.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		return defStyle
	}

	logger.Warnf("Theme '%s': neither '%s' nor 'Default' defined, using tcell default", t.Name, name)
	return tcell.StyleDefault
}

// ComfortDark is the built-in theme.
var ComfortDark = newComfortDark()

func newComfortDark() Theme {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	blue := tcell.NewHexColor(0x61afef)

	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)
	bar := tcell.StyleDefault.Background(background).Foreground(foreground)

	return Theme{
		Name:   "Comfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:         baseStyle,
			StyleEmptyLine:       baseStyle.Foreground(muted),
			StyleStatusBar:       bar,
			StyleStatusBarNormal: bar.Foreground(blue).Bold(true),
			StyleStatusBarInsert: bar.Foreground(green).Bold(true),
			StyleStatusBarChord:  bar.Foreground(yellow),
		},
	}
}

// Resolve returns the theme stored at path, or the built-in theme when path
// is empty or cannot be loaded.
func Resolve(path string) *Theme {
	builtin := ComfortDark
	if path == "" {
		return &builtin
	}
	t, err := LoadThemeFromFile(path)
	if err != nil {
		logger.Warnf("Theme: %v; using '%s'", err, builtin.Name)
		return &builtin
	}
	logger.Infof("Theme: using '%s'", t.Name)
	return t
}
