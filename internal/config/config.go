// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the runtime configuration read from the environment. The
// Gemini key is optional; without it the AI routes report the service as
// unconfigured instead of failing at startup.
type Config struct {
	GeminiAPIKey string // GEMINI_API_KEY, optional
	GeminiModel  string // GEMINI_MODEL, empty selects the built-in default
	Port         int    // PORT, default 8080
	DataDir      string // DATA_DIR, default ./data
	DatabaseURL  string // DATABASE_URL, optional Postgres backend

	JWT       *JWTConfig
	Passwords *PasswordConfig
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		parsed, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		if parsed < 1 || parsed > 65535 {
			return nil, fmt.Errorf("PORT out of range: %d", parsed)
		}
		port = parsed
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	jwt, err := NewJWTConfig()
	if err != nil {
		return nil, err
	}

	passwords, err := NewPasswordConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
		Port:         port,
		DataDir:      dataDir,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWT:          jwt,
		Passwords:    passwords,
	}, nil
}
