package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the client configuration.
type Config struct {
	// Companion API connection settings
	API APIConfig `toml:"api"`

	// Offline archive settings
	Archive ArchiveConfig `toml:"archive"`

	// Export settings
	Export ExportConfig `toml:"export"`
}

// APIConfig contains companion API connection settings.
type APIConfig struct {
	BaseURL        string `toml:"base_url"`         // Companion API base URL
	Timeout        string `toml:"timeout"`          // Request timeout (e.g., "10s")
	MaxRetries     int    `toml:"max_retries"`      // Max retry attempts for transient failures
	RetryBaseDelay string `toml:"retry_base_delay"` // Base delay for exponential backoff
	RateLimit      string `toml:"rate_limit"`       // Minimum spacing between requests
}

// ArchiveConfig contains offline archive settings.
type ArchiveConfig struct {
	Enabled      bool   `toml:"enabled"`       // Keep a local copy of fetched data
	DatabasePath string `toml:"database_path"` // Path to the archive database ("" = default)
}

// ExportConfig contains export settings.
type ExportConfig struct {
	OutputDir     string `toml:"output_dir"`     // Directory for exported files ("" = cwd)
	DefaultFormat string `toml:"default_format"` // "json" or "csv"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:9000/api/v1",
			Timeout:        "10s",
			MaxRetries:     3,
			RetryBaseDelay: "500ms",
			RateLimit:      "100ms",
		},
		Archive: ArchiveConfig{
			Enabled:      true,
			DatabasePath: "",
		},
		Export: ExportConfig{
			OutputDir:     "",
			DefaultFormat: "json",
		},
	}
}

// configPath returns the path to the configuration file.
func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".arena-insights")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// Load loads the configuration from disk. Returns default config if the file
// doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &config, nil
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// ParseTimeout returns the request timeout, falling back to the default on a
// missing or malformed value.
func (c *APIConfig) ParseTimeout() time.Duration {
	return parseDuration(c.Timeout, 10*time.Second)
}

// ParseRetryBaseDelay returns the retry base delay.
func (c *APIConfig) ParseRetryBaseDelay() time.Duration {
	return parseDuration(c.RetryBaseDelay, 500*time.Millisecond)
}

// ParseRateLimit returns the minimum request spacing.
func (c *APIConfig) ParseRateLimit() time.Duration {
	return parseDuration(c.RateLimit, 100*time.Millisecond)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

// ArchivePath returns the archive database path, defaulting to a file next to
// the config.
func (c *ArchiveConfig) ArchivePath() (string, error) {
	if c.DatabasePath != "" {
		return c.DatabasePath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".arena-insights", "archive.db"), nil
}
