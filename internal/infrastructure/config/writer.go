package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# Regnal Configuration

data:
  # Catalog files merged in order (json, yaml, toml or csv).
  # Leave empty to use the built-in Rulers of Bengal catalog.
  # paths: [catalog/dynasties.yaml, catalog/details.json]
  # sqlite: .regnal/catalog.db

view:
  era: all
  religion: all
  group_by: dynasty
  sort_by: reignStart
  sort_order: asc

server:
  addr: 127.0.0.1:8080
  rate_limit: 20
  burst: 40

log:
  level: info
  format: text
`

// WriteDefault creates the .regnal directory and writes a default config file.
func WriteDefault(basePath string) error {
	configFile := ConfigFilePath(basePath)

	if err := os.MkdirAll(ConfigDir(basePath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Write writes the given config to the config file.
func Write(basePath string, cfg *Config) error {
	if err := os.MkdirAll(ConfigDir(basePath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(ConfigFilePath(basePath), data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Exists checks if a regnal config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
