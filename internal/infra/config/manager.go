package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// configTemplate is written by `office config init`.
const configTemplate = `# office client configuration

[api]
# API root of the office service.
url = "http://localhost:8000/api"

[log]
# Log level: debug, info, warn, error
level = "info"
`

// Manager creates and inspects the config file.
type Manager struct {
	configDir string
}

// NewManager creates a new Manager for the given config directory.
func NewManager(configDir string) *Manager {
	return &Manager{configDir: configDir}
}

// Path returns the config file location.
func (m *Manager) Path() string {
	return filepath.Join(m.configDir, ConfigFileName)
}

// Init writes a commented template config file.
// Returns domain.ErrConfigExists if one is already present.
func (m *Manager) Init() (string, error) {
	path := m.Path()
	if _, err := os.Stat(path); err == nil {
		return path, domain.ErrConfigExists
	}
	if err := os.MkdirAll(m.configDir, 0o700); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}
	return path, nil
}
