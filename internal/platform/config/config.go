package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr            string
	Environment     string
	DefaultLanguage string
	ItemsPerPage    int
	MaxBodyBytes    int64
}

func Load() Config {
	return Config{
		Addr:            getEnv("APP_ADDR", ":8080"),
		Environment:     getEnv("APP_ENV", "development"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		ItemsPerPage:    getEnvInt("ITEMS_PER_PAGE", 5),
		MaxBodyBytes:    int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if c.ItemsPerPage < 1 {
		return fmt.Errorf("ITEMS_PER_PAGE must be positive")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if strings.TrimSpace(c.DefaultLanguage) == "" {
		return fmt.Errorf("DEFAULT_LANGUAGE must not be empty")
	}
	return nil
}
