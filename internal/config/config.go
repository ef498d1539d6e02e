// Package config loads the optional TOML configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application name used in logs and version output.
	AppName = "todo"

	// LogFormatText is the human-readable log format and the default.
	LogFormatText = "text"

	// LogFormatJSON writes one JSON object per log line.
	LogFormatJSON = "json"

	// LogFormatLogfmt writes logfmt key=value lines.
	LogFormatLogfmt = "logfmt"
)

// Config holds runtime settings.
type Config struct {
	// Path is the config file the values were loaded from, empty for defaults.
	Path string `toml:"-"`

	// Debug enables debug logging.
	Debug bool `toml:"debug"`

	// Quiet suppresses the echo of the parsed command.
	Quiet bool `toml:"quiet"`

	// ShowList renders the task list after the command is applied.
	ShowList bool `toml:"show_list"`

	// LogFormat is one of LogFormatText, LogFormatJSON or LogFormatLogfmt.
	LogFormat string `toml:"log_format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{LogFormat: LogFormatText}
}

// New returns the default config, overlaid with the TOML file at path if
// path is non-empty. The file is validated against the config schema
// before it is decoded.
func New(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := cfg.decode(string(data)); err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

func (c *Config) decode(data string) error {
	var raw map[string]any
	if _, err := toml.Decode(data, &raw); err != nil {
		return err
	}
	if err := validate(raw); err != nil {
		return err
	}

	if _, err := toml.Decode(data, c); err != nil {
		return err
	}
	if c.LogFormat == "" {
		c.LogFormat = LogFormatText
	}
	return nil
}
