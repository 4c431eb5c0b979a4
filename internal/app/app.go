package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/kevindowling/logcat-viewer/internal/adb"
	"github.com/kevindowling/logcat-viewer/internal/config"
	"github.com/kevindowling/logcat-viewer/internal/prefs"
	"github.com/kevindowling/logcat-viewer/internal/session"
	"github.com/kevindowling/logcat-viewer/internal/tailer"
	"github.com/kevindowling/logcat-viewer/internal/ui"
)

// Options configure the viewer application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/logcat-viewer/prefs.toml

	Device  string   // device serial; empty auto-selects
	Format  string   // logcat -v token; empty uses the configured default
	Filters []string // tag:priority filterspecs passed to logcat

	File    string // tail this file instead of capturing from adb
	Backlog int    // lines of file backlog to load; zero uses default

	ADBPath string // overrides the configured adb executable
}

// Run boots the live viewer TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.ADBPath != "" {
		cfg.ADBPath = opts.ADBPath
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	format := opts.Format
	if format == "" {
		format = cfg.Format
	}

	capture := session.CaptureOptions{
		Device:  opts.Device,
		Format:  format,
		Filters: opts.Filters,
	}

	var source session.Source
	if opts.File != "" {
		backlog := opts.Backlog
		if backlog <= 0 {
			backlog = tailer.DefaultBacklogLines
		}
		source = tailer.New(opts.File, backlog)
	} else {
		client := adb.NewClient(cfg.ADBPath)
		capture.Device, err = resolveDevice(ctx, client, opts.Device)
		if err != nil {
			return err
		}
		source = client
	}

	sess := session.New(source, session.NewBuffer(cfg.Capacity, cfg.TrimTo))

	// Start capturing before the UI comes up so the first paint has content.
	if err := sess.Start(ctx, capture); err != nil {
		return fmt.Errorf("start capture: %w", err)
	}
	defer sess.Stop()

	return ui.Run(ui.Options{
		Context:   ctx,
		Session:   sess,
		Capture:   capture,
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
	})
}

// resolveDevice picks the capture target. An explicit serial wins; otherwise a
// single attached device is used, none at all defers to adb's own default, and
// several is an error the user must break by naming one.
func resolveDevice(ctx context.Context, lister adb.DeviceLister, serial string) (string, error) {
	if serial != "" {
		return serial, nil
	}

	devices, err := lister.Devices(ctx)
	if err != nil {
		// adb may be unreachable for listing yet still capture; let the
		// capture attempt surface the real problem.
		return "", nil
	}

	online := devices[:0:0]
	for _, d := range devices {
		if d.State == "device" {
			online = append(online, d)
		}
	}

	switch len(online) {
	case 0:
		return "", nil
	case 1:
		return online[0].Serial, nil
	}

	serials := make([]string, len(online))
	for i, d := range online {
		serials[i] = d.Serial
	}
	return "", fmt.Errorf("multiple devices attached, pick one with --device: %s", strings.Join(serials, ", "))
}
