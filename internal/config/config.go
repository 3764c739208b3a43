// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents application configuration loadable from a JSON file.
// All fields are optional; missing values use defaults, environment
// variables, or CLI flags.
type Config struct {
	// Catalog overrides; empty paths use the embedded defaults.
	JobRoles    string `json:"job_roles,omitempty"`    // Path to a job_roles.json file
	CareerPaths string `json:"career_paths,omitempty"` // Path to a career_paths.json file

	// Server
	Port        int    `json:"port,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Headless browser for script-rendered JD pages
	Debug      bool `json:"debug,omitempty"`       // Debug-level logging
	JSONLog    bool `json:"json_log,omitempty"`    // JSON log encoding
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromEnv builds a configuration from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto the configuration. Env values
// win over file values so deployments can override without editing files.
func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	for _, p := range []struct{ name, path string }{
		{"job_roles", c.JobRoles},
		{"career_paths", c.CareerPaths},
	} {
		if p.path == "" {
			continue
		}
		if _, err := os.Stat(p.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", p.name, p.path)
		}
	}
	return nil
}
