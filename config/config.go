package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Debug             bool
	Host              string
	Port              int
	NumbersAPIURL     string
	NumbersAPITimeout time.Duration
	H2CEnabled        bool
	ShutdownTimeout   time.Duration
}

// Load reads the service configuration from the environment. A .env file in
// the working directory is loaded first if present; real environment
// variables always win over it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		Debug:             getEnvBool("FLASK_DEBUG", false) || getEnvBool("DEBUG", false),
		Host:              getEnv("HOST", "0.0.0.0"),
		Port:              getEnvInt("PORT", 5000),
		NumbersAPIURL:     strings.TrimRight(getEnv("NUMBERS_API_URL", "http://numbersapi.com"), "/"),
		NumbersAPITimeout: getEnvDuration("NUMBERS_API_TIMEOUT", 5*time.Second),
		H2CEnabled:        getEnvBool("H2C_ENABLED", false),
		ShutdownTimeout:   getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d: must be between 1 and 65535", c.Port)
	}
	if c.NumbersAPIURL == "" {
		return errors.New("NUMBERS_API_URL must not be empty")
	}
	if c.NumbersAPITimeout <= 0 {
		return fmt.Errorf("invalid NUMBERS_API_TIMEOUT %s: must be positive", c.NumbersAPITimeout)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid SHUTDOWN_TIMEOUT %s: must be positive", c.ShutdownTimeout)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool treats only the string "true" (any case) as enabled.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.EqualFold(strings.TrimSpace(value), "true")
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
