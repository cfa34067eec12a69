// Package config handles global configuration and data file resolution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/expense/config.yml.
type GlobalConfig struct {
	DataFile  string `yaml:"data_file,omitempty"`
	IndexFile string `yaml:"index_file,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "expense"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/expense/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	cfg.DataFile = ExpandPath(cfg.DataFile)
	cfg.IndexFile = ExpandPath(cfg.IndexFile)

	globalConfigCache = &cfg
	return &cfg, nil
}

// Save writes the global config, creating its directory if needed.
func (c *GlobalConfig) Save() error {
	path := GlobalConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	globalConfigCache = c
	return nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// Keys lists the settable configuration keys.
var Keys = []string{"data-file", "index-file"}

// NormalizeKey converts key formats (data-file, data_file, DATA_FILE) to the dashed form.
func NormalizeKey(key string) string {
	key = strings.ToLower(key)
	return strings.ReplaceAll(key, "_", "-")
}

// Get returns the value stored under a normalized key.
func (c *GlobalConfig) Get(key string) (string, error) {
	switch NormalizeKey(key) {
	case "data-file":
		return c.DataFile, nil
	case "index-file":
		return c.IndexFile, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s (valid: %s)", key, strings.Join(Keys, ", "))
	}
}

// Set stores value under key. Paths are expanded and made absolute.
func (c *GlobalConfig) Set(key, value string) error {
	if value != "" {
		abs, err := filepath.Abs(ExpandPath(value))
		if err != nil {
			return fmt.Errorf("resolving path: %w", err)
		}
		value = abs
	}

	switch NormalizeKey(key) {
	case "data-file":
		c.DataFile = value
	case "index-file":
		c.IndexFile = value
	default:
		return fmt.Errorf("unknown configuration key: %s (valid: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
