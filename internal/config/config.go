package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/matheus3301/messenger/internal/selection"
	"go.uber.org/zap/zapcore"
)

// Config represents ~/.messenger/config.toml.
type Config struct {
	// Seed is a TOML file with the roster and history to start with.
	// Empty uses the built-in mock data.
	Seed string `toml:"seed"`
	// InitialSelection is "first" or "none".
	InitialSelection string `toml:"initial_selection"`
	LogLevel         string `toml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		InitialSelection: string(selection.InitialFirst),
		LogLevel:         "info",
	}
}

// Load reads config from the given path. Returns error if the file is missing.
// Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := selection.ParseInitial(c.InitialSelection); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
