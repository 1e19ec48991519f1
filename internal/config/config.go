// Package config provides application-level configuration management.
//
// This is runtime wiring only (addresses, log levels, file paths). The
// pricing tables themselves live in core/pricing and are a separate,
// versioned concern.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v9"

	"plate-quote/internal/errors"
	"plate-quote/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains API server settings
	Server ServerConfig `json:"server"`

	// Knobs contains pricing-override settings
	Knobs KnobsConfig `json:"knobs"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains API server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" env:"PLATEQUOTE_ADDR"`
}

// KnobsConfig locates the admin-editable pricing override record
type KnobsConfig struct {
	// Path is the override JSON file; empty means baseline only
	Path string `json:"path" env:"PLATEQUOTE_KNOBS_PATH"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	knobsPath := filepath.Join(homeDir, ".plate-quote", "knobs.json")

	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr: ":8080",
		},
		Knobs: KnobsConfig{
			Path: knobsPath,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, then applies environment
// overrides. A missing file yields the defaults, not an error.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, config); err != nil {
			return nil, errors.Wrap(errors.TypeInternal, "invalid config file", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if err := env.Parse(config); err != nil {
		return nil, errors.Wrap(errors.TypeInternal, "invalid environment overrides", err)
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
