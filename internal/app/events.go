package app

import (
	"github.com/bethropolis/vie/internal/event"
	"github.com/bethropolis/vie/internal/logger"
)

func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeModeChanged, a.handleModeChanged)
	a.eventManager.Subscribe(event.TypeBufferModified, a.handleBufferModified)
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMoved)
}

func (a *App) handleModeChanged(e event.Event) bool {
	if data, ok := e.Data.(event.ModeChangedData); ok {
		logger.Infof("App: mode %s -> %s", data.From, data.To)
	}
	return false
}

func (a *App) handleBufferModified(e event.Event) bool {
	data, ok := e.Data.(event.BufferModifiedData)
	if !ok {
		logger.Warnf("App: BufferModified event with unexpected data type: %T", e.Data)
		return false
	}
	logger.DebugTagf("buffer", "App: %s left %d lines, undo depth %d", data.Action, data.LineCount, a.editor.History().Len())
	return false
}

func (a *App) handleCursorMoved(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		logger.DebugTagf("cursor", "App: cursor at %d:%d", data.NewPosition.Line+1, data.NewPosition.Col+1)
	}
	return false
}
