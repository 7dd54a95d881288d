package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverridesPresentFields(t *testing.T) {
	path := writeConfigFile(t, `{"address":":9999","secret_key":"json-secret","token_validity_minutes":30}`)

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd", "-c", path}

	config := &Config{}
	config.LoadDefaults()
	parseJson(config)

	assert.Equal(t, ":9999", config.Address)
	assert.Equal(t, "json-secret", config.SecretKey)
	assert.Equal(t, 30*time.Minute, config.TokenValidityDuration)
	// untouched fields keep defaults
	assert.Equal(t, "admin", config.AdminUsername)
	assert.Equal(t, DefaultAdminPassword, config.AdminPassword)
}

func TestParseJson_NoFileFlag(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd"}

	config := &Config{}
	config.LoadDefaults()
	parseJson(config)

	assert.Equal(t, ":8080", config.Address)
	assert.Equal(t, DefaultSecretKey, config.SecretKey)
}

func TestParseJson_InvalidFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd", "-c", path}

	config := &Config{}
	config.LoadDefaults()
	require.Panics(t, func() { parseJson(config) })
}
