// Package history provides single-step undo via a stack of inverse actions.
package history

import (
	"unicode/utf8"

	"github.com/bethropolis/vie/internal/buffer"
	"github.com/bethropolis/vie/internal/input"
	"github.com/bethropolis/vie/internal/logger"
)

// Stack is a LIFO of inverse actions. It only grows by Push and only
// shrinks from the top.
type Stack struct {
	changes []input.Action
}

// NewStack creates an empty undo stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push records an inverse action. Anything that is not an inverse kind is rejected.
func (s *Stack) Push(a input.Action) bool {
	if !a.Kind.IsInverse() {
		logger.Warnf("History: refusing to record non-inverse action %s", a)
		return false
	}
	s.changes = append(s.changes, a)
	logger.Debugf("History: recorded %s, depth %d", a, len(s.changes))
	return true
}

// Pop removes and returns the most recent entry.
func (s *Stack) Pop() (input.Action, bool) {
	if len(s.changes) == 0 {
		return input.Action{}, false
	}
	top := s.changes[len(s.changes)-1]
	s.changes = s.changes[:len(s.changes)-1]
	return top, true
}

func (s *Stack) Len() int {
	return len(s.changes)
}

// Entries returns a copy of the stack, bottom first.
func (s *Stack) Entries() []input.Action {
	out := make([]input.Action, len(s.changes))
	copy(out, s.changes)
	return out
}

// Undo pops the top entry and replays it against buf. The replayed entry is
// returned so the caller can restore the cursor. An empty stack is a no-op.
// An entry that no longer fits the buffer is consumed without effect.
func (s *Stack) Undo(buf buffer.Buffer) (input.Action, bool) {
	change, ok := s.Pop()
	if !ok {
		logger.Debugf("History: nothing to undo")
		return input.Action{}, false
	}

	var applied bool
	switch change.Kind {
	case input.ActionReinsertChar:
		raw := []byte(change.Text)
		if len(raw) == 0 {
			raw = utf8.AppendRune(nil, change.Rune)
		}
		applied = buf.InsertBytes(change.Col, change.Line, raw)
	case input.ActionReinsertLine:
		applied = buf.InsertLine(change.Line, []byte(change.Text))
	}
	if !applied {
		logger.Debugf("History: %s no longer applies, dropped", change)
		return change, false
	}
	logger.Debugf("History: undid via %s, depth %d", change, len(s.changes))
	return change, true
}
