package config

import (
	"time"
)

// Config is the root configuration structure
type Config struct {
	Version int           `yaml:"version"`
	Labels  []string      `yaml:"labels,omitempty"` // default labels by list position
	Affix   string        `yaml:"affix"`
	Title   string        `yaml:"title,omitempty"` // empty = affix
	Display bool          `yaml:"display"`
	Output  OutputConfig  `yaml:"output"`
	Archive ArchiveConfig `yaml:"archive"`
	Watch   WatchConfig   `yaml:"watch"`
	Log     LogConfig     `yaml:"log"`
}

// OutputConfig holds output locations and optional reports
type OutputConfig struct {
	Dir     string   `yaml:"dir"`
	Reports []string `yaml:"reports,omitempty"` // json, yaml
}

// ArchiveConfig holds the optional run archive database
type ArchiveConfig struct {
	Path string `yaml:"path,omitempty"` // empty = archive disabled
}

// WatchConfig holds settings for watch mode
type WatchConfig struct {
	Debounce *Duration `yaml:"debounce,omitempty"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
