// Package neo holds the Neo4j connection configuration and driver
// construction shared by the CLI and the export pipeline.
package neo

import (
	"fmt"
	"net/url"
	"os"
)

// Secret wraps a sensitive string to prevent accidental logging or marshalling.
type Secret string

// String implements fmt.Stringer, returning a redacted placeholder.
func (s Secret) String() string { return "[REDACTED]" }

// GoString implements fmt.GoStringer, returning a redacted placeholder.
func (s Secret) GoString() string { return "[REDACTED]" }

// MarshalText implements encoding.TextMarshaler, returning a redacted placeholder.
func (s Secret) MarshalText() ([]byte, error) { return []byte("[REDACTED]"), nil }

// Value returns the underlying secret string.
func (s Secret) Value() string { return string(s) }

// Config is the connection value object handed to Connect. Plain data,
// no global state; an empty Database selects the server default.
type Config struct {
	URI      string
	Username string
	Password Secret
	Database string
}

// FromEnv reads connection settings from VUEGRAPH_NEO4J_* variables,
// falling back to a local default instance.
func FromEnv() Config {
	return Config{
		URI:      envOr("VUEGRAPH_NEO4J_URI", "bolt://localhost:7687"),
		Username: envOr("VUEGRAPH_NEO4J_USERNAME", "neo4j"),
		Password: Secret(os.Getenv("VUEGRAPH_NEO4J_PASSWORD")),
		Database: os.Getenv("VUEGRAPH_NEO4J_DATABASE"),
	}
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	if c.URI == "" {
		return fmt.Errorf("neo4j URI is required")
	}
	u, err := url.Parse(c.URI)
	if err != nil {
		return fmt.Errorf("neo4j URI %q: %w", c.URI, err)
	}
	switch u.Scheme {
	case "bolt", "bolt+s", "bolt+ssc", "neo4j", "neo4j+s", "neo4j+ssc":
	default:
		return fmt.Errorf("neo4j URI scheme must be bolt or neo4j, got %q", u.Scheme)
	}
	if c.Username == "" {
		return fmt.Errorf("neo4j username is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
