package config

// Default values for optional configuration fields.
const (
	DefaultDBPort    = 5432
	DefaultDBSSLMode = "prefer"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

func (c *FileConfig) applyDefaults() {
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
}
