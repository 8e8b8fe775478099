// Package config loads client settings from a YAML file, a .env file, and
// environment variable overrides, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`

	UI struct {
		Theme string `yaml:"theme"` // "dark" or "light"
	} `yaml:"ui"`
}

// Load reads configuration from path, or from the default locations when
// path is empty. A missing config file is not an error; defaults plus env
// overrides apply.
func Load(path string) (*Config, error) {
	// .env is optional; ignore absence.
	_ = godotenv.Load()

	if path == "" {
		locations := []string{
			"lexterm.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/lexterm/config.yaml"),
			"/etc/lexterm/config.yaml",
		}
		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	config := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	mergeWithEnv(config)
	applyDefaults(config)
	return config, nil
}

func applyDefaults(config *Config) {
	if config.API.BaseURL == "" {
		config.API.BaseURL = "http://localhost:8080"
	}
	if config.API.TimeoutSeconds == 0 {
		config.API.TimeoutSeconds = 60
	}
	if config.UI.Theme == "" {
		config.UI.Theme = "dark"
	}
}

func mergeWithEnv(config *Config) {
	if v := os.Getenv("LEXTERM_API_BASE_URL"); v != "" {
		config.API.BaseURL = v
	}
	if v := os.Getenv("LEXTERM_API_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.API.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("LEXTERM_THEME"); v != "" {
		config.UI.Theme = v
	}
}
