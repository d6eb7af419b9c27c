package config

import (
	"os"

	"servicoperto-backend/utils"

	"github.com/joho/godotenv"
)

// Config holds the options read once at process start. There is no
// hot-reload: changing them requires a restart.
type Config struct {
	DatabaseURL string
	Port        string

	// Store verification backend URLs. Empty means the matching platform
	// verifier runs in placeholder mode.
	GoogleVerifyURL string
	AppleVerifyURL  string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, reading configuration from the system environment")
	}

	cfg := Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		Port:            os.Getenv("PORT"),
		GoogleVerifyURL: os.Getenv("GOOGLE_VERIFY_URL"),
		AppleVerifyURL:  os.Getenv("APPLE_VERIFY_URL"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	return cfg
}
