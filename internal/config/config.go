// Package config provides configuration management for gifseg.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	gifintext "github.com/riverfjs/gifintext-go"
)

// Config holds the gifseg configuration.
type Config struct {
	Label        string `yaml:"label,omitempty"`
	OutputFormat string `yaml:"output_format,omitempty"`
	GIFSymbol    string `yaml:"gif_symbol,omitempty"`
	Markdown     bool   `yaml:"markdown,omitempty"`
}

// Default returns a config with every field set to its default.
func Default() *Config {
	return &Config{
		Label:        gifintext.DefaultLabel,
		OutputFormat: "table",
		GIFSymbol:    gifintext.DefaultConfig().Symbol.GIF,
	}
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Label, " \t\r\n") {
		return errors.New("label must not contain whitespace")
	}
	if strings.ContainsAny(c.Label, "()") {
		return errors.New("label must not contain parentheses")
	}
	switch c.OutputFormat {
	case "", "table", "json", "plain":
	default:
		return fmt.Errorf("invalid output_format %q", c.OutputFormat)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if label := os.Getenv("GIFSEG_LABEL"); label != "" {
		c.Label = label
	}
	if output := os.Getenv("GIFSEG_OUTPUT"); output != "" {
		c.OutputFormat = output
	}
	if symbol := os.Getenv("GIFSEG_GIF_SYMBOL"); symbol != "" {
		c.GIFSymbol = symbol
	}
	if md := os.Getenv("GIFSEG_MARKDOWN"); md != "" {
		if v, err := strconv.ParseBool(md); err == nil {
			c.Markdown = v
		}
	}
}

// SegmenterOptions returns the library options matching this config.
func (c *Config) SegmenterOptions() []gifintext.Option {
	return []gifintext.Option{gifintext.WithLabel(c.Label)}
}

// RenderConfig returns the library render config matching this config.
func (c *Config) RenderConfig() *gifintext.RenderConfig {
	defaults := gifintext.DefaultConfig()
	symbol := *defaults.Symbol
	if c.GIFSymbol != "" {
		symbol.GIF = c.GIFSymbol
	}
	alt := c.Label
	if alt == "" {
		alt = defaults.AltText
	}
	return &gifintext.RenderConfig{
		Symbol:   &symbol,
		Markdown: c.Markdown,
		AltText:  alt,
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "gifseg", "config.yml")
	}

	// Fall back to ~/.config/gifseg/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".gifseg", "config.yml")
	}

	return filepath.Join(home, ".config", "gifseg", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
// A missing file is not an error; any other read or parse failure is.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
