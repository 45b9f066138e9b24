package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// RowsPerPageOptions are the page sizes the progress report offers
var RowsPerPageOptions = []int{5, 10, 20, 50}

// Config represents the application configuration
type Config struct {
	Version        int        `toml:"version"`
	BaseURL        string     `toml:"base_url"`
	Username       string     `toml:"username"`
	Strict         bool       `toml:"strict"`      // reject items without or with duplicate ids
	Concurrency    int        `toml:"concurrency"` // parallel subscribe requests
	TimeoutSeconds int        `toml:"timeout_seconds"`
	LogFile        string     `toml:"log_file"`
	UISettings     UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	RowsPerPage int `toml:"rows_per_page"`
	ListHeight  int `toml:"list_height"`
}

// Timeout returns the HTTP timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Normalize replaces missing or out of range values with defaults
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.Concurrency < 1 {
		c.Concurrency = def.Concurrency
	}
	if c.TimeoutSeconds < 1 {
		c.TimeoutSeconds = def.TimeoutSeconds
	}
	if c.LogFile == "" {
		c.LogFile = def.LogFile
	}
	if !slices.Contains(RowsPerPageOptions, c.UISettings.RowsPerPage) {
		c.UISettings.RowsPerPage = def.UISettings.RowsPerPage
	}
	if c.UISettings.ListHeight < 3 {
		c.UISettings.ListHeight = def.UISettings.ListHeight
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// DefaultPath is $XDG_CONFIG_HOME/eduadmin/config.toml or its platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "eduadmin", "config.toml")
}

// NewConfigService creates a config service for the default path
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service bound to path
func NewConfigServiceAt(path string) ConfigService {
	if path == "" {
		return NewConfigService()
	}
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration; a missing file yields the defaults
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write next to the target and rename over it
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:        1,
		BaseURL:        "http://localhost:8000",
		Concurrency:    4,
		TimeoutSeconds: 30,
		LogFile:        "eduadmin.log",
		UISettings: UISettings{
			RowsPerPage: 10,
			ListHeight:  12,
		},
	}
}
