package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first if present; real environment
// variables win over file values.
//
// Recognized variables:
//
//	ADDRESS               HTTP bind address
//	DATABASE_DSN          PostgreSQL DSN
//	SECRET_KEY            JWT HMAC secret
//	SIGNING_ALGORITHM     JWT signing algorithm
//	TOKEN_TTL_MINUTES     access token lifetime, minutes
//	PROTECT_BOOKS         "true" to require a bearer token on book endpoints
//	CORS_ALLOWED_ORIGINS  comma-separated origins
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.Addr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("SIGNING_ALGORITHM"); v != "" {
		config.SigningAlgorithm = v
	}
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.TokenTTL = time.Duration(minutes) * time.Minute
		}
	}
	if v := os.Getenv("PROTECT_BOOKS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.ProtectBooks = b
		}
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		config.CORSAllowedOrigins = v
	}
}
