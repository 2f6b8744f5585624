// Package config loads the fichas CLI configuration from the config file
// and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up inside the fichas home directory.
const ConfigFileName = "config.yaml"

// Config holds global settings for the CLI.
type Config struct {
	// APIURL is the base URL of the fichas backend.
	APIURL string `yaml:"api_url"`
	// DownloadDir is where generated documents are saved.
	DownloadDir string `yaml:"download_dir"`
	// DefaultCliente preselects a client NIF when no flag is given.
	DefaultCliente string `yaml:"default_cliente,omitempty"`
	// DefaultProyecto preselects a project acronym when no flag is given.
	DefaultProyecto string `yaml:"default_proyecto,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		APIURL:      "http://localhost:8000",
		DownloadDir: ".",
	}
}

// homeDir returns the fichas home directory, honouring FICHAS_HOME.
func homeDir() string {
	if envDir := os.Getenv("FICHAS_HOME"); envDir != "" {
		return envDir
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return ".fichas"
	}
	return filepath.Join(userHome, ".fichas")
}

// LoadConfig reads the config file if present, applies environment
// overrides and validates the result.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(homeDir(), ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// No config file is fine; defaults apply.
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if envURL := os.Getenv("FICHAS_API_URL"); envURL != "" {
		cfg.APIURL = envURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks and normalizes the configuration.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url cannot be empty")
	}
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("api_url must start with http:// or https://")
	}
	c.APIURL = strings.TrimSuffix(c.APIURL, "/")

	if c.DownloadDir == "" {
		c.DownloadDir = "."
	}
	abs, err := filepath.Abs(c.DownloadDir)
	if err != nil {
		return fmt.Errorf("failed to resolve download directory: %w", err)
	}
	c.DownloadDir = abs
	return nil
}

// Save writes the configuration back to the config file.
func (c *Config) Save() error {
	dir := homeDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize configuration: %w", err)
	}

	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
