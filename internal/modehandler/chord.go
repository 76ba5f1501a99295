package modehandler

// chordState is the two-key command sub-machine: Idle, or Awaiting a second
// press of first.
type chordState struct {
	awaiting bool
	first    rune
}

func (c *chordState) arm(r rune) {
	c.awaiting = true
	c.first = r
}

func (c *chordState) reset() {
	c.awaiting = false
	c.first = 0
}

// completes reports whether r finishes the pending chord.
func (c *chordState) completes(r rune) bool {
	return c.awaiting && c.first == r
}
