package config

import (
	"encoding/json"
	"os"
	"time"

	"user-service/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. Token validity is given in minutes; after unmarshalling, values are
// copied into the runtime Config.
type JsonConfig struct {
	Address              string `json:"address"`
	SecretKey            string `json:"secret_key"`
	TokenValidityMinutes int    `json:"token_validity_minutes"`
	AdminUsername        string `json:"admin_username"`
	AdminPassword        string `json:"admin_password"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config. The file path comes from the -c or -config command-line flags; if
// neither is set, no file is loaded. An unreadable or invalid file panics,
// since the process cannot meaningfully continue with half-applied
// configuration.
//
// Only fields present in the file override the current values.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Address != "" {
		config.Address = c.Address
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityMinutes > 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityMinutes) * time.Minute
	}
	if c.AdminUsername != "" {
		config.AdminUsername = c.AdminUsername
	}
	if c.AdminPassword != "" {
		config.AdminPassword = c.AdminPassword
	}
}
