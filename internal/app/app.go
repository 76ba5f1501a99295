// internal/app/app.go
package app

import (
	"fmt"

	"github.com/bethropolis/vie/internal/buffer"
	"github.com/bethropolis/vie/internal/config"
	"github.com/bethropolis/vie/internal/core"
	"github.com/bethropolis/vie/internal/core/clipboard"
	"github.com/bethropolis/vie/internal/event"
	"github.com/bethropolis/vie/internal/input"
	"github.com/bethropolis/vie/internal/logger"
	"github.com/bethropolis/vie/internal/modehandler"
	"github.com/bethropolis/vie/internal/render"
	"github.com/bethropolis/vie/internal/theme"
	"github.com/bethropolis/vie/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App owns the editor and the terminal for one session.
type App struct {
	tuiManager   *tui.TUI
	editor       *core.Editor
	eventManager *event.Manager
	filePath     string
	tabWidth     int
}

// NewApp opens the terminal and loads filePath. A missing or unreadable
// file gives an empty buffer carrying that name.
func NewApp(filePath string, cfg *config.Config) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	tuiManager, err := tui.New(theme.Resolve(cfg.Editor.ThemeFile))
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	return newApp(filePath, cfg, tuiManager), nil
}

// NewAppWithScreen is NewApp on a caller-supplied screen.
func NewAppWithScreen(filePath string, cfg *config.Config, screen tcell.Screen) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	tuiManager, err := tui.NewWithScreen(screen, theme.Resolve(cfg.Editor.ThemeFile))
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	return newApp(filePath, cfg, tuiManager), nil
}

func newApp(filePath string, cfg *config.Config, tuiManager *tui.TUI) *App {
	buf := buffer.NewSliceBuffer()
	if err := buf.Load(filePath); err != nil {
		logger.Warnf("App: starting with an empty buffer: %v", err)
	}

	modes := modehandler.New(input.NewKeymap(cfg.Keys))
	register := clipboard.NewRegister(cfg.Editor.SystemClipboard)
	editor := core.NewEditor(buf, modes, register)

	eventManager := event.NewManager()
	editor.SetEventManager(eventManager)

	a := &App{
		tuiManager:   tuiManager,
		editor:       editor,
		eventManager: eventManager,
		filePath:     filePath,
		tabWidth:     cfg.Editor.TabWidth,
	}
	a.subscribe()

	width, height := tuiManager.Size()
	editor.SetViewSize(width, height)
	return a
}

// Editor exposes the session's editor.
func (a *App) Editor() *core.Editor {
	return a.editor
}

// Events exposes the session's event bus.
func (a *App) Events() *event.Manager {
	return a.eventManager
}

// Run draws, then handles events until a quit action or until the screen
// is finalized. The terminal is restored before Run returns.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	a.draw()
	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{FilePath: a.filePath})

	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			logger.Debugf("App: event source closed")
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			width, height := ev.Size()
			a.editor.SetViewSize(width, height)
			a.tuiManager.GetScreen().Sync()
		case *tcell.EventKey:
			if a.editor.HandleKey(ev) {
				a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
				logger.Infof("App: quit requested")
				return nil
			}
		default:
			continue
		}

		a.draw()
	}
}

// draw normalizes the cursor, then paints one frame.
func (a *App) draw() {
	a.editor.Normalize()
	a.tuiManager.Paint(render.Compute(a.editor, a.tabWidth))
}
