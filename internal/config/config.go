package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port     string
	DBPath   string
	LogLevel string
	SeedDemo bool
}

// Load reads a .env file if one exists, then the environment. Every value
// has a sensible default so a bare `chorequest` starts a working instance.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:     getEnv("CHOREQUEST_PORT", "8080"),
		DBPath:   getEnv("CHOREQUEST_DB_PATH", "chorequest.db"),
		LogLevel: getEnv("CHOREQUEST_LOG_LEVEL", "info"),
		SeedDemo: getEnv("CHOREQUEST_SEED_DEMO", "") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
