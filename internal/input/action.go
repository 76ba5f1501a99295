package input

import (
	"fmt"
	"unicode/utf8"
)

// Mode is the input-interpretation context.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Kind tags an Action.
type Kind int

// The closed set of editor actions.
const (
	ActionUnknown Kind = iota

	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd
	ActionMovePageUp
	ActionMovePageDown

	ActionEnterMode  // Mode
	ActionInsertChar // Rune
	ActionInsertLineAbove
	ActionInsertLineBelow
	ActionDeleteChar
	ActionDeleteLine
	ActionYankLine
	ActionPutLine
	ActionUndo
	ActionQuit

	// Inverse actions, only ever found on the undo stack.
	ActionReinsertChar // Col, Line, Rune
	ActionReinsertLine // Line, Text
)

var kindNames = map[Kind]string{
	ActionUnknown:         "unknown",
	ActionMoveUp:          "up",
	ActionMoveDown:        "down",
	ActionMoveLeft:        "left",
	ActionMoveRight:       "right",
	ActionMoveHome:        "home",
	ActionMoveEnd:         "end",
	ActionMovePageUp:      "page_up",
	ActionMovePageDown:    "page_down",
	ActionEnterMode:       "enter_mode",
	ActionInsertChar:      "insert_char",
	ActionInsertLineAbove: "line_above",
	ActionInsertLineBelow: "line_below",
	ActionDeleteChar:      "delete_char",
	ActionDeleteLine:      "delete_line",
	ActionYankLine:        "yank_line",
	ActionPutLine:         "put_line",
	ActionUndo:            "undo",
	ActionQuit:            "quit",
	ActionReinsertChar:    "reinsert_char",
	ActionReinsertLine:    "reinsert_line",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsInverse reports whether k is an undo payload kind.
func (k Kind) IsInverse() bool {
	return k == ActionReinsertChar || k == ActionReinsertLine
}

// Action is a resolved command. Only the fields its Kind names are meaningful.
type Action struct {
	Kind Kind
	Mode Mode   // ActionEnterMode
	Rune rune   // ActionInsertChar, ActionReinsertChar
	Col  int    // ActionReinsertChar
	Line int    // ActionReinsertChar, ActionReinsertLine
	Text string // ActionReinsertLine; the removed bytes for ActionReinsertChar
}

func (a Action) String() string {
	switch a.Kind {
	case ActionEnterMode:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Mode)
	case ActionInsertChar:
		return fmt.Sprintf("%s(%q)", a.Kind, a.Rune)
	case ActionReinsertChar:
		return fmt.Sprintf("%s(%d,%d,%q)", a.Kind, a.Col, a.Line, a.Rune)
	case ActionReinsertLine:
		return fmt.Sprintf("%s(%d,%q)", a.Kind, a.Line, a.Text)
	default:
		return a.Kind.String()
	}
}

// Simple builds a payload-free action.
func Simple(k Kind) Action {
	return Action{Kind: k}
}

// EnterMode builds a mode switch.
func EnterMode(m Mode) Action {
	return Action{Kind: ActionEnterMode, Mode: m}
}

// InsertChar builds a character insertion.
func InsertChar(r rune) Action {
	return Action{Kind: ActionInsertChar, Rune: r}
}

// ReinsertChar is the inverse of deleting r at (col, line).
func ReinsertChar(col, line int, r rune) Action {
	return ReinsertRaw(col, line, r, utf8.AppendRune(nil, r))
}

// ReinsertRaw is ReinsertChar carrying the exact bytes that were removed,
// which differ from r's encoding when the line held invalid UTF-8.
func ReinsertRaw(col, line int, r rune, raw []byte) Action {
	return Action{Kind: ActionReinsertChar, Col: col, Line: line, Rune: r, Text: string(raw)}
}

// ReinsertLine is the inverse of deleting the line text at index line.
func ReinsertLine(line int, text string) Action {
	return Action{Kind: ActionReinsertLine, Line: line, Text: text}
}
