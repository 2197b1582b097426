package config

import (
	"fmt"
	"slices"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
	validSSLModes   = []string{"disable", "allow", "prefer", "require", "verify-ca", "verify-full"}
)

// Validate checks that the configured values are usable.
func (c *FileConfig) Validate() error {
	if c.Log.Level != "" && !slices.Contains(validLogLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v, got %q", validLogLevels, c.Log.Level)
	}
	if c.Log.Format != "" && !slices.Contains(validLogFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v, got %q", validLogFormats, c.Log.Format)
	}
	if c.Database.Configured() {
		if err := c.Database.validate("database"); err != nil {
			return err
		}
	}
	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Port < 1 || db.Port > 65535 {
		return fmt.Errorf("%s.port must be between 1 and 65535, got %d", prefix, db.Port)
	}
	if db.SSLMode != "" && !slices.Contains(validSSLModes, db.SSLMode) {
		return fmt.Errorf("%s.ssl_mode %q is not a valid sslmode", prefix, db.SSLMode)
	}
	if db.ConnectTimeout < 0 {
		return fmt.Errorf("%s.connect_timeout must be >= 0", prefix)
	}
	return nil
}
