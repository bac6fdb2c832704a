package config

import "time"

// Config holds runtime settings for the PrepWyse CLI.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite database.
//   - BackendLatency: simulated round-trip applied by the demo auth backend.
//   - SigningKey: HMAC key used to sign and verify session tokens. This is a
//     demo credential, not a security boundary.
//   - TokenValidity: lifetime of issued session tokens.
type Config struct {
	DatabaseDSN    string
	BackendLatency time.Duration
	SigningKey     string
	TokenValidity  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "prepwyse.db"
	c.BackendLatency = 1 * time.Second
	c.SigningKey = "prepwyse-demo-signing-key"
	c.TokenValidity = 30 * 24 * time.Hour
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
