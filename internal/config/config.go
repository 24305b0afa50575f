package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `json:"database"`
	Display  DisplayConfig  `json:"display"`
}

// DatabaseConfig holds the activity database location
type DatabaseConfig struct {
	Path string `json:"path"` // empty means ~/.eddington/data.db
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	ChartWidth  int `json:"chart_width"`
	ChartHeight int `json:"chart_height"`
	PageSize    int `json:"page_size"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			ChartWidth:  60,
			ChartHeight: 8,
			PageSize:    15,
		},
	}
}

// Load reads the configuration from ~/.eddington/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Display.ChartWidth == 0 {
		cfg.Display.ChartWidth = defaults.Display.ChartWidth
	}
	if cfg.Display.ChartHeight == 0 {
		cfg.Display.ChartHeight = defaults.Display.ChartHeight
	}
	if cfg.Display.PageSize == 0 {
		cfg.Display.PageSize = defaults.Display.PageSize
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.eddington/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return Save(&example)
}

// Validate checks if the config has sensible values
func (c *Config) Validate() error {
	if c.Display.ChartWidth < 0 {
		return fmt.Errorf("display.chart_width must not be negative, got %d", c.Display.ChartWidth)
	}
	if c.Display.ChartHeight < 0 {
		return fmt.Errorf("display.chart_height must not be negative, got %d", c.Display.ChartHeight)
	}
	if c.Display.PageSize < 0 {
		return fmt.Errorf("display.page_size must not be negative, got %d", c.Display.PageSize)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".eddington", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".eddington"), nil
}
