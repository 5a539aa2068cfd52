package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Backend
	APIURL      string        `env:"BOOKSHELF_API_URL" default:"http://localhost:3000/api"`
	HTTPTimeout time.Duration `env:"BOOKSHELF_HTTP_TIMEOUT" default:"10s"`

	// Session
	TokenFile string `env:"BOOKSHELF_TOKEN_FILE"`

	// Listing defaults
	PerPage int `env:"BOOKSHELF_PER_PAGE" default:"9"`

	// Development
	LogLevel string `env:"BOOKSHELF_LOG_LEVEL" default:"warn"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// A missing .env file is fine, system env vars still apply.
	_ = godotenv.Load(".env")

	config := &Config{}

	if err := loadEnvString(&config.APIURL, "BOOKSHELF_API_URL", "http://localhost:3000/api"); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.HTTPTimeout, "BOOKSHELF_HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.TokenFile, "BOOKSHELF_TOKEN_FILE", defaultTokenFile()); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.PerPage, "BOOKSHELF_PER_PAGE", 9); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.LogLevel, "BOOKSHELF_LOG_LEVEL", "warn"); err != nil {
		return nil, err
	}

	return config, nil
}

// defaultTokenFile is the fallback token location when the OS keyring is unavailable.
func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".bookshelf_token"
	}
	return filepath.Join(dir, "bookshelf", "token")
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) error {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvInt(target *int, key string, defaultValue int) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvDuration(target *time.Duration, key string, defaultValue time.Duration) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

// Validate performs validation on the loaded configuration
func (c *Config) Validate() error {
	var errors []string

	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		errors = append(errors, "BOOKSHELF_API_URL must be an http(s) URL")
	}
	if c.HTTPTimeout <= 0 {
		errors = append(errors, "BOOKSHELF_HTTP_TIMEOUT must be positive")
	}
	if c.PerPage < 1 {
		errors = append(errors, "BOOKSHELF_PER_PAGE must be at least 1")
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		errors = append(errors, fmt.Sprintf("BOOKSHELF_LOG_LEVEL must be one of: %s", strings.Join(validLogLevels, ", ")))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}
	return nil
}

// Helper function to check if slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
