package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL        = "http://localhost:5000/api"
	defaultTimeoutSeconds = 15
)

// Config represents the application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
}

// ServerConfig describes how to reach the backend API.
type ServerConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration.
func (s ServerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist. A .env file in the
// working directory is loaded best-effort, and PROJECTMAN_SERVER
// overrides the configured base URL either way.
func Load() (*Config, error) {
	// Best-effort: a missing .env is the normal case.
	_ = godotenv.Load()

	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		if data, readErr := os.ReadFile(configPath); readErr == nil {
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, err
			}
		}
	}

	config.applyDefaults()
	applyEnvOverrides(config)
	return config, nil
}

// Save saves the config to the user's config directory.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file.
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "projectman", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "projectman", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults.
func (c *Config) applyDefaults() {
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = defaultBaseURL
	}
	if c.Server.TimeoutSeconds <= 0 {
		c.Server.TimeoutSeconds = defaultTimeoutSeconds
	}
}

func applyEnvOverrides(c *Config) {
	if baseURL := os.Getenv("PROJECTMAN_SERVER"); baseURL != "" {
		c.Server.BaseURL = baseURL
	}
}
