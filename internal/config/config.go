package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Backend struct {
		BaseURL string `yaml:"base_url" env:"BACKEND_BASE_URL"`
		Timeout string `yaml:"timeout" env:"BACKEND_TIMEOUT"`
	} `yaml:"backend"`

	Redis struct {
		URL        string `yaml:"url" env:"REDIS_URL"`
		SessionTTL string `yaml:"session_ttl" env:"REDIS_SESSION_TTL"`
	} `yaml:"redis"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars alone are enough for deployment
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "3000"
	config.Server.Mode = "development"

	config.Backend.BaseURL = "http://localhost:8080/api"
	config.Backend.Timeout = "15s"

	config.Redis.URL = "redis://localhost:6379/0"
	config.Redis.SessionTTL = "168h"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Backend.BaseURL == "" {
		return fmt.Errorf("backend base URL is required")
	}
	if _, err := url.Parse(config.Backend.BaseURL); err != nil {
		return fmt.Errorf("backend base URL is not a valid URL: %w", err)
	}
	if _, err := time.ParseDuration(config.Backend.Timeout); err != nil {
		return fmt.Errorf("backend timeout is not a valid duration: %w", err)
	}
	if _, err := time.ParseDuration(config.Redis.SessionTTL); err != nil {
		return fmt.Errorf("redis session TTL is not a valid duration: %w", err)
	}
	return nil
}

// BackendTimeout returns the parsed backend request timeout.
func (c *Config) BackendTimeout() time.Duration {
	d, err := time.ParseDuration(c.Backend.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// SessionTTL returns the parsed session lifetime.
func (c *Config) SessionTTL() time.Duration {
	d, err := time.ParseDuration(c.Redis.SessionTTL)
	if err != nil {
		return 168 * time.Hour
	}
	return d
}
