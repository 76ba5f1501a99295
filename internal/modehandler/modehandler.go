// internal/modehandler/modehandler.go
package modehandler

import (
	"github.com/bethropolis/vie/internal/input"
	"github.com/bethropolis/vie/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// ModeHandler owns the current mode and the pending chord, and turns key
// events into actions. It never mutates the buffer or cursor itself.
type ModeHandler struct {
	keymap      *input.Keymap
	currentMode input.Mode
	chord       chordState
}

// New creates a ModeHandler in Normal mode.
func New(keymap *input.Keymap) *ModeHandler {
	if keymap == nil {
		keymap = input.NewKeymap(input.DefaultBindings())
	}
	return &ModeHandler{
		keymap:      keymap,
		currentMode: input.ModeNormal,
	}
}

// Mode returns the current input mode.
func (mh *ModeHandler) Mode() input.Mode {
	return mh.currentMode
}

// SetMode switches mode. Only the dispatcher calls this, when applying an EnterMode action.
func (mh *ModeHandler) SetMode(m input.Mode) {
	if m != mh.currentMode {
		logger.DebugTagf("mode", "ModeHandler: %s -> %s", mh.currentMode, m)
	}
	mh.currentMode = m
}

// PendingChord returns the armed chord key, if any.
func (mh *ModeHandler) PendingChord() (rune, bool) {
	return mh.chord.first, mh.chord.awaiting
}

// Resolve maps a key event to an action for the current mode.
// ok is false when the key produces no action (unbound, or a chord was armed).
func (mh *ModeHandler) Resolve(ev *tcell.EventKey) (input.Action, bool) {
	switch mh.currentMode {
	case input.ModeNormal:
		return mh.resolveNormal(ev)
	case input.ModeInsert:
		return mh.resolveInsert(ev)
	default:
		logger.Warnf("ModeHandler: unknown mode %v", mh.currentMode)
		return input.Action{}, false
	}
}

func (mh *ModeHandler) resolveNormal(ev *tcell.EventKey) (input.Action, bool) {
	if ev.Key() != tcell.KeyRune {
		mh.discardChord()
		return mh.keymap.Key(ev.Key())
	}

	if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
		mh.discardChord()
		return input.Action{}, false
	}

	r := ev.Rune()
	if mh.chord.completes(r) {
		mh.chord.reset()
		a, ok := mh.keymap.Chord(r)
		logger.DebugTagf("mode", "ModeHandler: chord %c%c -> %s", r, r, a)
		return a, ok
	}
	mh.discardChord()

	if _, ok := mh.keymap.Chord(r); ok {
		mh.chord.arm(r)
		logger.DebugTagf("mode", "ModeHandler: chord armed with %q", r)
		return input.Action{}, false
	}
	return mh.keymap.Rune(r)
}

// discardChord drops a pending chord on any key that does not complete it.
func (mh *ModeHandler) discardChord() {
	if mh.chord.awaiting {
		logger.DebugTagf("mode", "ModeHandler: chord %q discarded", mh.chord.first)
		mh.chord.reset()
	}
}

func (mh *ModeHandler) resolveInsert(ev *tcell.EventKey) (input.Action, bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return input.EnterMode(input.ModeNormal), true
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
			return input.Action{}, false
		}
		return input.InsertChar(ev.Rune()), true
	}
	return input.Action{}, false
}
