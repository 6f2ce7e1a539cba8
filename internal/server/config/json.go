package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ivlasenko/bookvault/internal/flagx"
	"github.com/ivlasenko/bookvault/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for the TTL field, which allows parsing both
// string values such as "30m" and integer nanoseconds. After unmarshalling,
// its fields are copied into the runtime Config.
type JsonConfig struct {
	Addr               string         `json:"address"`
	DatabaseDSN        string         `json:"database_dsn"`
	SecretKey          string         `json:"secret_key"`
	SigningAlgorithm   string         `json:"signing_algorithm"`
	TokenTTL           timex.Duration `json:"token_ttl"`
	ProtectBooks       bool           `json:"protect_books"`
	CORSAllowedOrigins string         `json:"cors_allowed_origins"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path is taken from the -c or -config flags; when
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
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

	config.Addr = c.Addr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.SigningAlgorithm = c.SigningAlgorithm
	config.TokenTTL = time.Duration(c.TokenTTL.Duration)
	config.ProtectBooks = c.ProtectBooks
	config.CORSAllowedOrigins = c.CORSAllowedOrigins
}
