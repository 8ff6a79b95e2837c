package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	AppEnv      string
	Timeout     time.Duration
	RecentLimit int
	Debounce    time.Duration
	TokenFile   string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		APIBaseURL:  getEnv("TEMUIN_API_URL", "http://localhost:8080/api/v1"),
		AppEnv:      getEnv("APP_ENV", "development"),
		Timeout:     time.Duration(getEnvInt("TEMUIN_TIMEOUT_SECONDS", 30)) * time.Second,
		RecentLimit: getEnvInt("TEMUIN_RECENT_LIMIT", 6),
		Debounce:    time.Duration(getEnvInt("TEMUIN_DEBOUNCE_MS", 500)) * time.Millisecond,
		TokenFile:   getEnv("TEMUIN_TOKEN_FILE", defaultTokenFile()),
	}
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "temuin", "token")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
