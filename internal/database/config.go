package database

import (
	"fmt"
	"net/url"
	"strings"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DefaultDatabaseURL is used when no connection string is configured
const DefaultDatabaseURL = "sqlite://app.db"

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// URL is the connection string for PostgreSQL
	URL string

	// SQLite-specific configuration
	Path string

	// MaxRetries is the number of connection attempts before giving up
	MaxRetries int
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, URL: %s, Path: %s, MaxRetries: %d}",
		c.Driver, MaskURL(c.URL), c.Path, c.MaxRetries)
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case DriverPostgres:
		return c.URL
	case DriverSQLite, "":
		if strings.Contains(c.Path, "_foreign_keys=") {
			return c.Path
		}
		sep := "?"
		if strings.Contains(c.Path, "?") {
			sep = "&"
		}
		return c.Path + sep + "_foreign_keys=on"
	default:
		return ""
	}
}

// ParseDatabaseURL selects the driver from a connection string.
// postgres:// and postgresql:// go to PostgreSQL; sqlite://, file: and bare
// paths go to SQLite. An empty string falls back to DefaultDatabaseURL.
func ParseDatabaseURL(raw string) (DatabaseConfig, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultDatabaseURL
	}

	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		if _, err := url.Parse(raw); err != nil {
			return DatabaseConfig{}, fmt.Errorf("invalid postgres connection string: %w", err)
		}
		return DatabaseConfig{Driver: DriverPostgres, URL: raw}, nil

	case strings.HasPrefix(lower, "sqlite://"):
		// sqlite:///abs/path keeps its leading slash, sqlite://rel.db stays relative
		path := raw[len("sqlite://"):]
		if path == "" {
			return DatabaseConfig{}, fmt.Errorf("sqlite connection string has no path: %s", raw)
		}
		return DatabaseConfig{Driver: DriverSQLite, Path: path}, nil

	case strings.HasPrefix(lower, "file:"):
		return DatabaseConfig{Driver: DriverSQLite, Path: raw}, nil

	case strings.Contains(raw, "://"):
		return DatabaseConfig{}, fmt.Errorf("unsupported database scheme in %s (supported: postgres, sqlite)", MaskURL(raw))

	default:
		return DatabaseConfig{Driver: DriverSQLite, Path: raw}, nil
	}
}

// MaskURL masks the password in a connection URL
func MaskURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "REDACTED")
		}
	}

	return parsed.String()
}
