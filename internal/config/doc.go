// Package config loads the viewer's TOML configuration.
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/logcat-viewer/config.toml
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults per field
//
// Settings cover the adb executable path, the default logcat format token,
// and the live buffer's capacity/trim/render bounds. Inconsistent values are
// clamped rather than rejected so a hand-edited file never stops the viewer
// from starting.
package config
