package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings for chunking and the serve mode.
type Config struct {
	// Chunking
	Limit     int    // Maximum chunk length in characters.
	Separator string // Joiner between adjacent leaves within a chunk.

	// Code block elision
	ElisionThreshold   int
	ElisionPlaceholder string

	// Serve mode
	Port   string
	APIKey string // Empty disables authentication.
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Limit:              1500,
		Separator:          " ",
		ElisionThreshold:   80,
		ElisionPlaceholder: "listing omitted; please see the original source",
		Port:               "8091",
	}
}

// Load returns the defaults overlaid with environment variables.
func Load() Config {
	cfg := Default()
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv overlays MDCHUNK_* environment variables onto the config.
func (c *Config) ApplyEnv() {
	c.Limit = envInt("MDCHUNK_LIMIT", c.Limit)
	c.Separator = envOr("MDCHUNK_SEPARATOR", c.Separator)
	c.ElisionThreshold = envInt("MDCHUNK_ELISION_THRESHOLD", c.ElisionThreshold)
	c.ElisionPlaceholder = envOr("MDCHUNK_ELISION_PLACEHOLDER", c.ElisionPlaceholder)
	c.Port = envOr("MDCHUNK_PORT", c.Port)
	c.APIKey = envOr("MDCHUNK_API_KEY", c.APIKey)
}

// fileConfig mirrors Config for YAML files. Pointer fields distinguish
// "absent" from a zero value, so a file can set an empty separator.
type fileConfig struct {
	Limit              *int    `yaml:"limit"`
	Separator          *string `yaml:"separator"`
	ElisionThreshold   *int    `yaml:"elision_threshold"`
	ElisionPlaceholder *string `yaml:"elision_placeholder"`
	Port               *string `yaml:"port"`
	APIKey             *string `yaml:"api_key"`
}

// ApplyFile overlays a YAML config file onto the config.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.Limit != nil {
		c.Limit = *fc.Limit
	}
	if fc.Separator != nil {
		c.Separator = *fc.Separator
	}
	if fc.ElisionThreshold != nil {
		c.ElisionThreshold = *fc.ElisionThreshold
	}
	if fc.ElisionPlaceholder != nil {
		c.ElisionPlaceholder = *fc.ElisionPlaceholder
	}
	if fc.Port != nil {
		c.Port = *fc.Port
	}
	if fc.APIKey != nil {
		c.APIKey = *fc.APIKey
	}
	return nil
}

func (c Config) Validate() error {
	if c.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", c.Limit)
	}
	if c.ElisionThreshold < 1 {
		return fmt.Errorf("elision threshold must be at least 1, got %d", c.ElisionThreshold)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
