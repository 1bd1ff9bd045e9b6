package domain

// Config represents the client configuration.
type Config struct {
	API APIConfig // [api] settings
	Log LogConfig // [log] settings
}

// APIConfig holds remote service settings from the [api] section.
type APIConfig struct {
	URL string // API root, e.g. http://localhost:8000/api
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the configuration used when no config file
// exists. The default API root matches the backend's local dev setup.
func NewDefaultConfig() *Config {
	return &Config{
		API: APIConfig{URL: "http://localhost:8000/api"},
		Log: LogConfig{Level: "info"},
	}
}

// ConfigLoader loads configuration from files and the environment.
type ConfigLoader interface {
	// Load returns the effective configuration (defaults, then file,
	// then environment overrides).
	Load() (*Config, error)
}

// ConfigManager creates and inspects the config file.
type ConfigManager interface {
	// Init writes a commented template config file.
	// Returns ErrConfigExists if one is already present.
	Init() (path string, err error)

	// Path returns the config file location.
	Path() string
}
