// Package config loads per-user and per-project defaults for the req CLI.
// A config file supplies the baseline a command starts from; flags always
// win over it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds default request settings.
type Config struct {
	UserAgent string            `yaml:"user_agent,omitempty"`
	Headers   map[string]string `yaml:"headers,omitempty"`
	Proxy     string            `yaml:"proxy,omitempty"`

	ConnectTimeoutMS int `yaml:"connect_timeout_ms,omitempty"`
	ReadTimeoutMS    int `yaml:"read_timeout_ms,omitempty"`

	Gzip     *bool `yaml:"gzip,omitempty"`
	Insecure *bool `yaml:"insecure,omitempty"`
	NoColor  *bool `yaml:"no_color,omitempty"`

	HistoryDB string `yaml:"history_db,omitempty"`
}

func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetGzip returns the gzip default, off when unset.
func (c *Config) GetGzip() bool { return getBool(c.Gzip, false) }

// GetInsecure returns the TLS-verification-off default, off when unset.
func (c *Config) GetInsecure() bool { return getBool(c.Insecure, false) }

// GetNoColor returns the color-suppression default, off when unset.
func (c *Config) GetNoColor() bool { return getBool(c.NoColor, false) }

// Filenames are the project-local config file names searched in order.
var Filenames = []string{
	".req.yaml",
	".req.yml",
	"req.config.yaml",
}

// Load reads a config file from an explicit path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Discover searches the working directory and then ~/.req/config.yaml for
// a config file. It returns (nil, nil) when none exists.
func Discover() (*Config, error) {
	for _, name := range Filenames {
		if _, err := os.Stat(name); err == nil {
			return Load(name)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil
	}
	path := filepath.Join(home, ".req", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	return Load(path)
}
