package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/bethropolis/vie/internal/logger"
)

// Register holds the last yanked or deleted line. With system mirroring on,
// writes also go to the OS clipboard and reads prefer it.
type Register struct {
	text   string
	filled bool
	system bool
}

// NewRegister creates an empty register.
func NewRegister(system bool) *Register {
	return &Register{system: system}
}

// Set stores a line.
func (r *Register) Set(text string) {
	r.text = text
	r.filled = true
	if !r.system {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		logger.Debugf("Register: system clipboard write failed, keeping internal copy: %v", err)
	}
}

// Get returns the stored line. ok is false if nothing was ever stored.
func (r *Register) Get() (string, bool) {
	if r.system && !clipboard.Unsupported {
		text, err := clipboard.ReadAll()
		if err == nil && text != "" {
			return firstLine(text), true
		}
		if err != nil {
			logger.Debugf("Register: system clipboard read failed: %v", err)
		}
	}
	return r.text, r.filled
}

// firstLine keeps the register line-shaped when the OS clipboard holds more.
func firstLine(text string) string {
	for i, c := range text {
		if c == '\n' || c == '\r' {
			return text[:i]
		}
	}
	return text
}
