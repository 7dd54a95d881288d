// Package config handles configuration for the server component, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import "time"

// Development fallbacks, kept for parity with the original demo deployment.
// The server logs a warning at startup while any of them is in effect.
const (
	DefaultSecretKey     = "your-secret-key-change-in-production"
	DefaultAdminPassword = "admin123"
)

// Config holds runtime settings for the user service.
//
// Fields:
//   - Address: bind address for the public HTTP endpoint.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the
//     default in prod.
//   - TokenValidityDuration: lifetime of issued tokens.
//   - AdminUsername / AdminPassword: the single administrator identity
//     seeded at startup.
type Config struct {
	Address               string
	SecretKey             string
	TokenValidityDuration time.Duration
	AdminUsername         string
	AdminPassword         string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Address = ":8080"
	c.SecretKey = DefaultSecretKey
	c.TokenValidityDuration = 24 * time.Hour
	c.AdminUsername = "admin"
	c.AdminPassword = DefaultAdminPassword
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
