package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kevindowling/logcat-viewer/internal/config"
	"github.com/kevindowling/logcat-viewer/internal/prefs"
	"github.com/kevindowling/logcat-viewer/internal/session"
)

// renderDebounce coalesces bursts of appended chunks into one repaint.
const renderDebounce = 100 * time.Millisecond

// Options configure the UI.
type Options struct {
	Context   context.Context
	Session   *session.Session
	Capture   session.CaptureOptions
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
}

// Run starts the TUI and blocks until the user quits or the context is
// cancelled.
func Run(opts Options) error {
	if opts.Session == nil {
		return fmt.Errorf("ui requires a capture session")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	p := tea.NewProgram(newModel(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err == tea.ErrProgramKilled && ctx.Err() != nil {
		return nil
	}
	return err
}
