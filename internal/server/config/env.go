package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays configuration from environment variables.
//
// Recognized variables:
//
//	ADDRESS         full bind address (e.g. ":8080")
//	PORT            port only; used when ADDRESS is not set
//	JWT_SECRET      HMAC signing secret
//	TOKEN_VALIDITY  token validity in minutes
//	ADMIN_USERNAME  seeded administrator username
//	ADMIN_PASSWORD  seeded administrator password
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.Address = v
	} else if v := os.Getenv("PORT"); v != "" {
		config.Address = ":" + v
	}

	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}

	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			config.TokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}

	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		config.AdminUsername = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		config.AdminPassword = v
	}
}
