// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/ersonp/regnal/internal/domain/entities"
)

const (
	// DefaultConfigDir is the directory name for regnal configuration.
	DefaultConfigDir = ".regnal"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "REGNAL_"
)

// Config holds static configuration (read-only after load).
type Config struct {
	Data   DataConfig   `yaml:"data,omitempty"`
	View   ViewConfig   `yaml:"view,omitempty"`
	Server ServerConfig `yaml:"server,omitempty"`
	Log    LogConfig    `yaml:"log,omitempty"`
}

// DataConfig selects where the catalog is loaded from.
type DataConfig struct {
	// Paths are catalog files merged in order. Empty means the built-in data set.
	Paths []string `yaml:"paths,omitempty" env:"DATA_PATHS" envSeparator:","`
	// SQLite is a snapshot database read instead of Paths when set.
	SQLite string `yaml:"sqlite,omitempty" env:"SQLITE"`
}

// ViewConfig holds the explorer's initial view parameters.
type ViewConfig struct {
	Search    string `yaml:"search,omitempty"`
	Era       string `yaml:"era,omitempty"`
	Religion  string `yaml:"religion,omitempty"`
	GroupBy   string `yaml:"group_by,omitempty"`
	SortBy    string `yaml:"sort_by,omitempty"`
	SortOrder string `yaml:"sort_order,omitempty"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr      string  `yaml:"addr,omitempty" env:"SERVER_ADDR"`
	RateLimit float64 `yaml:"rate_limit,omitempty" env:"SERVER_RATE_LIMIT"` // Requests per second
	Burst     int     `yaml:"burst,omitempty" env:"SERVER_BURST"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level,omitempty" env:"LOG_LEVEL"`
	Format string `yaml:"format,omitempty" env:"LOG_FORMAT"` // "text" or "json"
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		View: ViewConfig{
			Era:       entities.FilterAll,
			Religion:  entities.FilterAll,
			GroupBy:   string(entities.GroupByDynasty),
			SortBy:    string(entities.SortByReignStart),
			SortOrder: string(entities.SortAsc),
		},
		Server: ServerConfig{
			Addr:      "127.0.0.1:8080",
			RateLimit: 20,
			Burst:     40,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from the .regnal directory in the given path.
// A missing config file is not an error; defaults and environment apply.
func Load(basePath string) (*Config, error) {
	// Start with defaults
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies REGNAL_* environment variables over file values.
func (c *Config) applyEnvOverrides() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parsing environment overrides: %w", err)
	}
	return nil
}

// Params parses the configured view into view parameters.
func (v ViewConfig) Params() (entities.ViewParams, error) {
	params := entities.DefaultViewParams()
	params.Search = v.Search

	var err error
	if params.Era, err = entities.ParseEraFilter(v.Era); err != nil {
		return params, fmt.Errorf("view.era: %w", err)
	}
	if params.Religion, err = entities.ParseReligionFilter(v.Religion); err != nil {
		return params, fmt.Errorf("view.religion: %w", err)
	}
	if v.GroupBy != "" {
		if params.GroupBy, err = entities.ParseGroupBy(v.GroupBy); err != nil {
			return params, fmt.Errorf("view.group_by: %w", err)
		}
	}
	if v.SortBy != "" {
		if params.SortBy, err = entities.ParseSortBy(v.SortBy); err != nil {
			return params, fmt.Errorf("view.sort_by: %w", err)
		}
	}
	if v.SortOrder != "" {
		if params.SortOrder, err = entities.ParseSortOrder(v.SortOrder); err != nil {
			return params, fmt.Errorf("view.sort_order: %w", err)
		}
	}
	return params, nil
}

// ConfigDir returns the path to the .regnal config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// ResolvePath makes a configured path absolute relative to basePath.
func ResolvePath(basePath, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(basePath, path)
}
