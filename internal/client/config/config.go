package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/tasknotes/internal/logging"
)

// Handshake modes.
const (
	HandshakeHTTP = "http"
	HandshakeStub = "stub"
)

// Config holds runtime settings for the tasknotes client.
//
// Fields:
//   - ServerURL: API root, e.g. "https://notes.example.com/api".
//   - DatabasePath: SQLite file holding the local session.
//   - HandshakeMode: "http" fetches the CSRF token from <ServerURL>/settings/,
//     "stub" skips the request and uses an empty token.
//   - HandshakeTimeout: bound on the initial handshake.
//   - RequestTimeout: bound on every other request.
//   - CAPath: optional extra trusted CA bundle (PEM).
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerURL        string
	DatabasePath     string
	HandshakeMode    string
	HandshakeTimeout time.Duration
	RequestTimeout   time.Duration
	CAPath           string
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080/api"
	c.DatabasePath = "tasknotes.db"
	c.HandshakeMode = HandshakeHTTP
	c.HandshakeTimeout = 10 * time.Second
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server url required")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path required")
	}
	if c.HandshakeMode != HandshakeHTTP && c.HandshakeMode != HandshakeStub {
		return fmt.Errorf("unknown handshake mode %q", c.HandshakeMode)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
