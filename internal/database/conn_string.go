package database

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/rickgao/pgcheck/internal/config"
)

// BuildConnString builds a PostgreSQL connection string from config.
func BuildConnString(cfg config.DBConfig) string {
	// URL-encode password to handle special characters
	escapedPassword := url.QueryEscape(cfg.Password)

	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = config.DefaultDBSSLMode
	}

	port := cfg.Port
	if port == 0 {
		port = config.DefaultDBPort
	}

	params := url.Values{}
	params.Set("sslmode", sslMode)
	// connect_timeout takes whole seconds; round up so 500ms does not become "no timeout".
	if secs := int(math.Ceil(cfg.ConnectTimeout.Seconds())); secs > 0 {
		params.Set("connect_timeout", strconv.Itoa(secs))
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?%s",
		url.QueryEscape(cfg.User),
		escapedPassword,
		cfg.Host,
		port,
		url.PathEscape(cfg.Name),
		params.Encode(),
	)
}
