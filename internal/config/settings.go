package config

import (
	"fmt"

	"go-simpler.org/env"
)

// Settings is the typed view of the variables pgcheck reads from an Env.
type Settings struct {
	TimescaleServiceURL string `env:"TIMESCALE_SERVICE_URL"`
	DatabaseURL         string `env:"DATABASE_URL"`
	LogLevel            string `env:"LOG_LEVEL" default:"warn"`
	LogFormat           string `env:"LOG_FORMAT" default:"text"`

	// Decoding cannot tell an unset variable from an empty one.
	timescaleSet bool
	databaseSet  bool
}

// ParseSettings decodes Settings from the snapshot, not the live environment.
func ParseSettings(e Env) (*Settings, error) {
	var s Settings
	if err := env.Load(&s, &env.Options{Source: e}); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	_, s.timescaleSet = e.Lookup(EnvTimescaleServiceURL)
	_, s.databaseSet = e.Lookup(EnvDatabaseURL)
	return &s, nil
}

// TimescaleURL returns TIMESCALE_SERVICE_URL and whether it was set.
func (s *Settings) TimescaleURL() (string, bool) {
	return s.TimescaleServiceURL, s.timescaleSet
}

// DatabaseURLValue returns DATABASE_URL and whether it was set.
func (s *Settings) DatabaseURLValue() (string, bool) {
	return s.DatabaseURL, s.databaseSet
}

// Logging returns the effective log level and format. Values from the YAML
// file, when present, take precedence over the environment.
func (s *Settings) Logging(file *FileConfig) (level, format string) {
	level, format = s.LogLevel, s.LogFormat
	if file != nil {
		if file.Log.Level != "" {
			level = file.Log.Level
		}
		if file.Log.Format != "" {
			format = file.Log.Format
		}
	}
	if level == "" {
		level = DefaultLogLevel
	}
	if format == "" {
		format = DefaultLogFormat
	}
	return level, format
}
