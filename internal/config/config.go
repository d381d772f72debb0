package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnvHome overrides the data directory when set.
const EnvHome = "CORKBOARD_HOME"

// Config represents the flat corkboard configuration.
type Config struct {
	Version string `json:"version"`
	DataDir string `json:"data_dir,omitempty"` // overrides the default data directory
}

// LoadConfig reads config.json from the data directory. A missing
// file is not an error; defaults apply.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to the data directory.
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DataDir resolves the data directory: $CORKBOARD_HOME if set,
// otherwise ~/.corkboard, with a config.json data_dir override.
func DataDir() (string, error) {
	dir := os.Getenv(EnvHome)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".corkboard")
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		return "", err
	}
	if cfg.DataDir != "" {
		return cfg.DataDir, nil
	}
	return dir, nil
}
