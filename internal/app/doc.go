// Package app provides the orchestration layer for the live viewer.
//
// # Overview
//
// This package wires together configuration, the capture source, the session,
// and the UI to create the complete live-viewing experience. It serves as the
// composition root where all dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load viewer configuration from ~/.config/logcat-viewer/config.toml
//  2. Load persisted UI preferences (theme, follow mode)
//  3. Build the capture source: an adb client, or a file tailer for --file
//  4. Resolve the target device when capturing from adb
//  5. Start the capture session so the first paint has content
//  6. Start the TUI and block until the user exits or the context cancels
//
// # Device Resolution
//
// When no serial is named, the attached devices are listed and a single online
// device is selected automatically. Zero devices defers to adb's own default
// so that a device plugged in later still works; more than one online device
// is an error naming the candidate serials, since guessing would silently
// capture from the wrong phone.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file present but invalid
//   - More than one online device and no serial given
//   - Capture start failure (adb executable missing, bad arguments)
//
// Recoverable conditions (surfaced through session events, UI keeps running):
//   - adb exiting mid-capture
//   - The tailed file being rotated or removed
//
// # Dependencies
//
//   - config: Loads and normalizes the viewer configuration file
//   - prefs: Persisted UI preferences
//   - adb / tailer: Capture sources implementing session.Source
//   - session: Lifecycle and bounded record buffer
//   - ui: Terminal user interface (TUI) implementation
package app
