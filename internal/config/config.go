package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Config holds the application settings.
type Config struct {
	// LogLevel is the minimum log level: debug, info, warn, or error.
	LogLevel string

	// Mouse enables mouse capture.
	Mouse bool

	// Paste enables bracketed-paste capture.
	Paste bool

	// CursorWindowMS is the cursor query reply window in milliseconds.
	CursorWindowMS int
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:       "info",
		Mouse:          true,
		Paste:          true,
		CursorWindowMS: 2000,
	}
}

// CursorWindow returns the cursor query window as a duration, falling back to
// the default for non-positive values.
func (c Config) CursorWindow() time.Duration {
	if c.CursorWindowMS <= 0 {
		return time.Duration(Default().CursorWindowMS) * time.Millisecond
	}
	return time.Duration(c.CursorWindowMS) * time.Millisecond
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "termstream", "config.json"), nil
}

// Load reads the configuration at path, layering file values over the
// defaults. A missing file yields the defaults with no error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return cfg, fmt.Errorf("config %s: invalid JSON", path)
	}

	if v := gjson.GetBytes(data, "log_level"); v.Exists() {
		cfg.LogLevel = v.String()
	}
	if v := gjson.GetBytes(data, "mouse"); v.Exists() {
		cfg.Mouse = v.Bool()
	}
	if v := gjson.GetBytes(data, "paste"); v.Exists() {
		cfg.Paste = v.Bool()
	}
	if v := gjson.GetBytes(data, "cursor_window_ms"); v.Exists() {
		cfg.CursorWindowMS = int(v.Int())
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed.
func (c Config) Save(path string) error {
	data := []byte("{}")

	var err error
	if data, err = sjson.SetBytes(data, "log_level", c.LogLevel); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if data, err = sjson.SetBytes(data, "mouse", c.Mouse); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if data, err = sjson.SetBytes(data, "paste", c.Paste); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if data, err = sjson.SetBytes(data, "cursor_window_ms", c.CursorWindowMS); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
