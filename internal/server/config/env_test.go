package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("ADDRESS", ":9191")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TOKEN_VALIDITY", "90")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "pw")

	config := &Config{}
	config.LoadDefaults()
	parseEnv(config)

	assert.Equal(t, ":9191", config.Address)
	assert.Equal(t, "env-secret", config.SecretKey)
	assert.Equal(t, 90*time.Minute, config.TokenValidityDuration)
	assert.Equal(t, "root", config.AdminUsername)
	assert.Equal(t, "pw", config.AdminPassword)
}

func TestParseEnv_PortFallback(t *testing.T) {
	t.Setenv("PORT", "3000")

	config := &Config{}
	config.LoadDefaults()
	parseEnv(config)

	assert.Equal(t, ":3000", config.Address)
}

func TestParseEnv_AddressWinsOverPort(t *testing.T) {
	t.Setenv("ADDRESS", ":7070")
	t.Setenv("PORT", "3000")

	config := &Config{}
	config.LoadDefaults()
	parseEnv(config)

	assert.Equal(t, ":7070", config.Address)
}

func TestParseEnv_InvalidValidityIgnored(t *testing.T) {
	t.Setenv("TOKEN_VALIDITY", "not-a-number")

	config := &Config{}
	config.LoadDefaults()
	parseEnv(config)

	assert.Equal(t, 24*time.Hour, config.TokenValidityDuration)
}
