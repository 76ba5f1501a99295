package input

import (
	"unicode/utf8"

	"github.com/bethropolis/vie/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Bindings names the Normal-mode character for each rebindable command.
// Chord commands (delete_line, yank_line) are triggered by pressing their
// character twice.
type Bindings struct {
	Quit       string `toml:"quit"`
	Insert     string `toml:"insert"`
	Left       string `toml:"left"`
	Down       string `toml:"down"`
	Up         string `toml:"up"`
	Right      string `toml:"right"`
	Home       string `toml:"home"`
	End        string `toml:"end"`
	DeleteChar string `toml:"delete_char"`
	Undo       string `toml:"undo"`
	LineAbove  string `toml:"line_above"`
	LineBelow  string `toml:"line_below"`
	DeleteLine string `toml:"delete_line"`
	YankLine   string `toml:"yank_line"`
	PutLine    string `toml:"put_line"`
}

// DefaultBindings are the vi-flavoured defaults.
func DefaultBindings() Bindings {
	return Bindings{
		Quit:       "q",
		Insert:     "i",
		Left:       "h",
		Down:       "j",
		Up:         "k",
		Right:      "l",
		Home:       "0",
		End:        "$",
		DeleteChar: "x",
		Undo:       "u",
		LineAbove:  "O",
		LineBelow:  "o",
		DeleteLine: "d",
		YankLine:   "y",
		PutLine:    "p",
	}
}

// Merge overlays the non-empty fields of o onto b.
func (b Bindings) Merge(o Bindings) Bindings {
	pick := func(base, over string) string {
		if over != "" {
			return over
		}
		return base
	}
	return Bindings{
		Quit:       pick(b.Quit, o.Quit),
		Insert:     pick(b.Insert, o.Insert),
		Left:       pick(b.Left, o.Left),
		Down:       pick(b.Down, o.Down),
		Up:         pick(b.Up, o.Up),
		Right:      pick(b.Right, o.Right),
		Home:       pick(b.Home, o.Home),
		End:        pick(b.End, o.End),
		DeleteChar: pick(b.DeleteChar, o.DeleteChar),
		Undo:       pick(b.Undo, o.Undo),
		LineAbove:  pick(b.LineAbove, o.LineAbove),
		LineBelow:  pick(b.LineBelow, o.LineBelow),
		DeleteLine: pick(b.DeleteLine, o.DeleteLine),
		YankLine:   pick(b.YankLine, o.YankLine),
		PutLine:    pick(b.PutLine, o.PutLine),
	}
}

// Keymap maps Normal-mode key events to actions.
type Keymap struct {
	keys   map[tcell.Key]Action // Special keys (arrows, PgUp, ...)
	runes  map[rune]Action      // Single character commands
	chords map[rune]Action      // Two presses of the same character
}

// NewKeymap builds the Normal-mode key map. Fixed special keys are always
// bound; characters come from b, falling back to the default for any
// binding that is not exactly one character.
func NewKeymap(b Bindings) *Keymap {
	km := &Keymap{
		keys:   make(map[tcell.Key]Action),
		runes:  make(map[rune]Action),
		chords: make(map[rune]Action),
	}
	km.loadSpecialKeys()

	def := DefaultBindings()
	bindRune := func(name, value, fallback string, a Action, chord bool) {
		r, ok := singleRune(value)
		if !ok {
			logger.Warnf("Keymap: invalid binding %q for %s, using %q", value, name, fallback)
			r, _ = singleRune(fallback)
		}
		if chord {
			if prev, taken := km.runes[r]; taken {
				logger.Warnf("Keymap: chord key %q for %s shadows %s", r, name, prev.Kind)
				delete(km.runes, r)
			}
			km.chords[r] = a
			return
		}
		if _, taken := km.chords[r]; taken {
			logger.Warnf("Keymap: %q for %s is already a chord key, ignoring", r, name)
			return
		}
		if prev, taken := km.runes[r]; taken {
			logger.Warnf("Keymap: %q for %s is already bound to %s, ignoring", r, name, prev.Kind)
			return
		}
		km.runes[r] = a
	}

	// Chords first so single-key bindings cannot shadow them.
	bindRune("delete_line", b.DeleteLine, def.DeleteLine, Simple(ActionDeleteLine), true)
	bindRune("yank_line", b.YankLine, def.YankLine, Simple(ActionYankLine), true)

	bindRune("quit", b.Quit, def.Quit, Simple(ActionQuit), false)
	bindRune("insert", b.Insert, def.Insert, EnterMode(ModeInsert), false)
	bindRune("left", b.Left, def.Left, Simple(ActionMoveLeft), false)
	bindRune("down", b.Down, def.Down, Simple(ActionMoveDown), false)
	bindRune("up", b.Up, def.Up, Simple(ActionMoveUp), false)
	bindRune("right", b.Right, def.Right, Simple(ActionMoveRight), false)
	bindRune("home", b.Home, def.Home, Simple(ActionMoveHome), false)
	bindRune("end", b.End, def.End, Simple(ActionMoveEnd), false)
	bindRune("delete_char", b.DeleteChar, def.DeleteChar, Simple(ActionDeleteChar), false)
	bindRune("undo", b.Undo, def.Undo, Simple(ActionUndo), false)
	bindRune("line_above", b.LineAbove, def.LineAbove, Simple(ActionInsertLineAbove), false)
	bindRune("line_below", b.LineBelow, def.LineBelow, Simple(ActionInsertLineBelow), false)
	bindRune("put_line", b.PutLine, def.PutLine, Simple(ActionPutLine), false)

	return km
}

func (km *Keymap) loadSpecialKeys() {
	km.keys[tcell.KeyUp] = Simple(ActionMoveUp)
	km.keys[tcell.KeyDown] = Simple(ActionMoveDown)
	km.keys[tcell.KeyLeft] = Simple(ActionMoveLeft)
	km.keys[tcell.KeyRight] = Simple(ActionMoveRight)
	km.keys[tcell.KeyPgUp] = Simple(ActionMovePageUp)
	km.keys[tcell.KeyPgDn] = Simple(ActionMovePageDown)
	km.keys[tcell.KeyCtrlB] = Simple(ActionMovePageUp)
	km.keys[tcell.KeyCtrlF] = Simple(ActionMovePageDown)
	km.keys[tcell.KeyHome] = Simple(ActionMoveHome)
	km.keys[tcell.KeyEnd] = Simple(ActionMoveEnd)
	km.keys[tcell.KeyDelete] = Simple(ActionDeleteChar)
	km.keys[tcell.KeyCtrlC] = Simple(ActionQuit)
}

// Key looks up a special (non-character) key.
func (km *Keymap) Key(k tcell.Key) (Action, bool) {
	a, ok := km.keys[k]
	return a, ok
}

// Rune looks up a single-character command.
func (km *Keymap) Rune(r rune) (Action, bool) {
	a, ok := km.runes[r]
	return a, ok
}

// Chord looks up the command completed by pressing r twice.
func (km *Keymap) Chord(r rune) (Action, bool) {
	a, ok := km.chords[r]
	return a, ok
}

func singleRune(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, r != utf8.RuneError
}
