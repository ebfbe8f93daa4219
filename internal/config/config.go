// Package config provides configuration management for vennsets.
//
// Settings are layered, later layers winning:
//  1. built-in defaults (DefaultConfig)
//  2. the config file, if one is found
//  3. VENN_* environment variables, also read from ./.env
//  4. command-line flags (Overrides)
//
// Resolve folds the layers into a Run once per invocation; everything
// downstream consumes the Run as plain data.
//
// Config file locations (priority order):
//  1. $VENN_CONFIG
//  2. ./venn.yaml
//  3. $XDG_CONFIG_HOME/venn/config.yaml
//  4. ~/.config/venn/config.yaml
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"vennsets/internal/domain"
)

const (
	DefaultAffix     = "default_out"
	DefaultOutputDir = "./figures"
	DefaultLogLevel  = "info"
	DefaultDebounce  = 500 * time.Millisecond
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Affix == "" {
		c.Affix = DefaultAffix
	}
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Watch.Debounce == nil {
		d := Duration(DefaultDebounce)
		c.Watch.Debounce = &d
	}
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	labels := make([]string, domain.MaxArity)
	for i := range labels {
		labels[i] = domain.DefaultLabels[i]
		if i < len(c.Labels) && c.Labels[i] != "" {
			labels[i] = c.Labels[i]
		}
	}
	title := c.Title
	if title == "" {
		title = c.Affix
	}

	summary := fmt.Sprintf("Affix: %s, Title: %s, Labels: %s\n", c.Affix, title, strings.Join(labels, ", "))
	summary += fmt.Sprintf("Output: %s, Display: %v, Reports: %v\n", c.Output.Dir, c.Display, c.Output.Reports)
	summary += fmt.Sprintf("Archive: %q, Log level: %s", c.Archive.Path, c.Log.Level)
	return summary
}
