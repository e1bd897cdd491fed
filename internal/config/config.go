// Package config loads the client configuration from an optional YAML file
// with environment-variable overrides, so the same binary points at a local
// backend during development and the real one in the restaurant.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	APIURL    string `yaml:"api_url"`
	TokenFile string `yaml:"token_file"`
	LogFile   string `yaml:"log_file"`
	LogLevel  string `yaml:"log_level"`

	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`

	PageSizes struct {
		Orders   int `yaml:"orders"`
		Products int `yaml:"products"`
		Browse   int `yaml:"browse"`
		Users    int `yaml:"users"`
	} `yaml:"page_sizes"`
}

// Load reads the config file at path, fills defaults, and applies env
// overrides. A missing file is fine; env vars and defaults still apply.
// A .env file next to the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// run on defaults
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if cfg.APIURL == "" {
		return nil, errors.New("config: api_url must not be empty")
	}
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{
		APIURL:                "http://localhost:8080",
		TokenFile:             filepath.Join(stateDir(), "token"),
		LogFile:               filepath.Join(stateDir(), "waiter.log"),
		LogLevel:              "info",
		RequestTimeoutSeconds: 10,
	}
	cfg.PageSizes.Orders = 50
	cfg.PageSizes.Products = 50
	cfg.PageSizes.Browse = 30
	cfg.PageSizes.Users = 100
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("WAITER_API_URL"); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv("WAITER_TOKEN_FILE"); v != "" {
		c.TokenFile = v
	}
	if v := os.Getenv("WAITER_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("WAITER_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// RequestTimeout returns the configured HTTP timeout.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func stateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".waiter"
	}
	return filepath.Join(home, ".waiter")
}
