package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/kevindowling/logcat-viewer/internal/session"
)

// Config captures the viewer's tunable settings.
type Config struct {
	ADBPath     string // adb executable; empty resolves from PATH
	Format      string // default logcat -v token
	Capacity    int    // live buffer record bound
	TrimTo      int    // records kept after a capacity trim
	RenderLimit int    // most-recent records rendered per pass
}

const (
	defaultConfigPath = "~/.config/logcat-viewer/config.toml"
	defaultFormat     = "threadtime"
)

var knownFormats = map[string]bool{
	"threadtime": true, "brief": true, "time": true, "tag": true, "long": true, "raw": true,
}

// Load locates and parses the config file, falling back to defaults when it
// is missing. Out-of-range values are clamped rather than rejected.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ADBPath     string `toml:"adb_path"`
		Format      string `toml:"format"`
		Capacity    int    `toml:"buffer_capacity"`
		TrimTo      int    `toml:"buffer_trim_to"`
		RenderLimit int    `toml:"render_limit"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if adb := strings.TrimSpace(raw.ADBPath); adb != "" {
		cfg.ADBPath = adb
	}
	if format := strings.TrimSpace(raw.Format); format != "" {
		cfg.Format = format
	}
	if raw.Capacity > 0 {
		cfg.Capacity = raw.Capacity
	}
	if raw.TrimTo > 0 {
		cfg.TrimTo = raw.TrimTo
	}
	if raw.RenderLimit > 0 {
		cfg.RenderLimit = raw.RenderLimit
	}

	return normalize(cfg), nil
}

func defaults() Config {
	return Config{
		Format:      defaultFormat,
		Capacity:    session.DefaultCapacity,
		TrimTo:      session.DefaultTrimTo,
		RenderLimit: session.DefaultRenderLimit,
	}
}

// normalize keeps the settings mutually consistent: the trim mark may not
// exceed capacity and the format token must be one adb accepts.
func normalize(cfg Config) Config {
	if cfg.TrimTo > cfg.Capacity {
		cfg.TrimTo = cfg.Capacity
	}
	if !knownFormats[cfg.Format] {
		cfg.Format = defaultFormat
	}
	return cfg
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
