// Package config handles application configuration, including defaults,
// JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the recipe keeper.
//
// Fields:
//   - DatabaseDSN: SQLite file path or a postgres:// DSN (pgx).
//   - AdminPassword: when non-empty, an "admin" account is created on startup
//     with this password. Empty leaves the admin account disabled.
//   - SessionSecret: HMAC secret for signing session tokens (HS256). Empty
//     disables the stay-signed-in feature.
//   - SessionTokenValidity: how long a saved session stays valid.
//   - SessionFile: where the session token is persisted between runs.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: image storage settings. An empty
//     base endpoint disables image upload and sharing.
type Config struct {
	DatabaseDSN          string
	AdminPassword        string
	SessionSecret        string
	SessionTokenValidity time.Duration
	SessionFile          string
	S3RootUser           string
	S3RootPassword       string
	S3Bucket             string
	S3Region             string
	S3BaseEndpoint       string
}

// LoadDefaults populates Config with local-first defaults: an SQLite file in
// the working directory and both optional subsystems switched off.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "recipes.db"
	c.AdminPassword = ""
	c.SessionSecret = ""
	c.SessionTokenValidity = 720 * time.Hour
	c.SessionFile = ".recipekeeper_session"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "recipes"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
