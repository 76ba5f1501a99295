// internal/event/manager.go
package event

import (
	"github.com/bethropolis/vie/internal/logger"
)

// Handler is an event subscriber. Returning true stops delivery to the
// remaining handlers for that event.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching. Dispatch is
// synchronous and runs on the caller's goroutine.
type Manager struct {
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.Debugf("Event Manager: handler subscribed to %v", eventType)
}

// Dispatch sends an event to the registered handlers for its type, in
// subscription order.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	handlers := m.handlers[eventType]
	if len(handlers) == 0 {
		return
	}

	logger.DebugTagf("event", "Event Manager: dispatching %v to %d handler(s)", eventType, len(handlers))

	// A handler may subscribe during dispatch; iterate over a copy.
	handlersCopy := make([]Handler, len(handlers))
	copy(handlersCopy, handlers)

	ev := Event{Type: eventType, Data: data}
	for _, handler := range handlersCopy {
		if handler(ev) {
			break
		}
	}
}
