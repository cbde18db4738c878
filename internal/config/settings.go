package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Settings holds all configuration options.
type Settings struct {
	Theme     string `toml:"theme"`    // classic, neon, mono
	NoColor   bool   `toml:"no_color"` // force plain output
	TUI       bool   `toml:"tui"`      // full-screen front end
	Verbosity string `toml:"verbosity"`

	// Books is an optional JSON file seeding the catalog.
	Books string `toml:"books"`

	Librarian LibrarianSettings `toml:"librarian"`
}

// LibrarianSettings is the identity of the session's librarian.
type LibrarianSettings struct {
	Name       string `toml:"name"`
	EmployeeID string `toml:"employee_id"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Theme:     "classic",
		Verbosity: "warn",
		Librarian: LibrarianSettings{
			Name:       "Mr. John",
			EmployeeID: "LIB001",
		},
	}
}

// Load reads settings from a TOML file on top of the defaults.
// A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), settings)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, fmt.Errorf("parse config: unknown key %q", keys[0].String())
	}
	return settings, settings.Validate()
}

// Validate rejects values the console cannot honor.
func (s *Settings) Validate() error {
	if _, err := ParseLevel(s.Verbosity); err != nil {
		return err
	}
	return nil
}

// LogLevel is the slog level for Verbosity; invalid values mean warn.
func (s *Settings) LogLevel() slog.Level {
	lvl, err := ParseLevel(s.Verbosity)
	if err != nil {
		return slog.LevelWarn
	}
	return lvl
}

// ParseLevel accepts debug, info, warn and error (case-insensitive).
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid verbosity %q: want debug, info, warn or error", s)
	}
	return lvl, nil
}
