package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
// It also returns the file it read, or "" when running on defaults.
func Load() (*Config, string, error) {
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		return nil, "", err
	}
	return cfg, configPath, nil
}

// LoadFile builds a config from defaults, the given file (skipped when path
// is empty) and CLI flags, then validates it.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Drivetown")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Drivetown")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "drivetown")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "drivetown")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
