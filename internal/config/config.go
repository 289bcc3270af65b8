package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appName = "taskboard"
	// EnvConfigPath overrides the default config location.
	EnvConfigPath = "TASKBOARD_CONFIG"
)

// Config represents the application configuration
type Config struct {
	KeyMappings  KeyMappings `yaml:"key_mappings"`
	Theme        Theme       `yaml:"theme"`
	DisableMouse bool        `yaml:"disable_mouse"`

	path string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		Theme:       DefaultTheme(),
	}
}

// Load reads the config at path. An empty path resolves to the default
// location. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			cfg.path = path
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	cfg.path = path

	return &cfg, nil
}

// Path is the file the config was loaded from or will be saved to.
func (c *Config) Path() string {
	return c.path
}

// Save writes the config back to where it was loaded from.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	c.path = path
	return nil
}

// DefaultPath returns the config file location: $TASKBOARD_CONFIG, then
// $XDG_CONFIG_HOME/taskboard/config.yaml, then ~/.config/taskboard/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.Theme.applyDefaults()
}
