// Package config loads and saves buffer settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the buffer defaults read at startup.
type Settings struct {
	Columns    int    `yaml:"columns"`     // viewport width in cells
	Lines      int    `yaml:"lines"`       // viewport height in rows
	MaxHistory int    `yaml:"max_history"` // scrollback cap, 0 disables
	DefaultFg  string `yaml:"default_fg"`
	DefaultBg  string `yaml:"default_bg"`
	Debug      bool   `yaml:"debug"` // debug-level logging
}

// Default returns settings matching a standard 80x24 terminal.
func Default() *Settings {
	return &Settings{
		Columns:    80,
		Lines:      24,
		MaxHistory: 1000,
		DefaultFg:  "default",
		DefaultBg:  "default",
	}
}

// Load reads settings from path, filling unset fields with defaults. A
// missing file is not an error; defaults are returned.
func Load(path string) (*Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes settings to path, creating parent directories as needed.
func Save(path string, s *Settings) error {
	if err := s.validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Settings) validate() error {
	if s.Columns <= 0 {
		return fmt.Errorf("config: columns must be positive, got %d", s.Columns)
	}
	if s.Lines <= 0 {
		return fmt.Errorf("config: lines must be positive, got %d", s.Lines)
	}
	if s.MaxHistory < 0 {
		return fmt.Errorf("config: max_history must not be negative, got %d", s.MaxHistory)
	}
	return nil
}

// DefaultPath returns ~/.config/termbuf/settings.yaml, honoring
// XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "termbuf", "settings.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "termbuf", "settings.yaml"), nil
}
