// Package config provides configuration loading for the office client.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// ConfigFileName is the config file name inside the config directory.
const ConfigFileName = "config.toml"

// fileConfig is the TOML shape of the config file.
type fileConfig struct {
	API struct {
		URL string `toml:"url"`
	} `toml:"api"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// Dir returns the client's config directory. OFFICE_CONFIG_DIR wins,
// then XDG_CONFIG_HOME/office, then ~/.config/office.
func Dir() string {
	if dir := os.Getenv("OFFICE_CONFIG_DIR"); dir != "" {
		return dir
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "office")
}

// Loader loads configuration from the TOML config file plus environment
// overrides.
type Loader struct {
	configDir string
}

// NewLoader creates a new Loader for the given config directory.
func NewLoader(configDir string) *Loader {
	return &Loader{configDir: configDir}
}

// Load returns the effective configuration: defaults, overlaid by the
// config file if present, overlaid by environment variables.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	file, err := l.loadFile()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if file != nil {
		if file.API.URL != "" {
			cfg.API.URL = file.API.URL
		}
		if file.Log.Level != "" {
			cfg.Log.Level = file.Log.Level
		}
	}

	if url := os.Getenv("OFFICE_API_URL"); url != "" {
		cfg.API.URL = url
	}
	if level := os.Getenv("OFFICE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func (l *Loader) loadFile() (*fileConfig, error) {
	if l.configDir == "" {
		return nil, os.ErrNotExist
	}
	content, err := os.ReadFile(filepath.Join(l.configDir, ConfigFileName))
	if err != nil {
		return nil, err
	}
	var cfg fileConfig
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &cfg, nil
}
