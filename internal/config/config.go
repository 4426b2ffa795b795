package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	// Logging
	LogLevel string

	// Journal store
	Store       string
	DatabaseURL string

	// Kafka; no brokers disables events
	KafkaBrokers []string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() *Config {
	// ignore errors: .env is only used in local development
	_ = godotenv.Load()

	return &Config{
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Store:        getEnv("LEDGER_STORE", StoreMemory),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		KafkaBrokers: getEnvList("KAFKA_BROKERS"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err.Error())
	}

	switch c.Store {
	case StoreMemory:
	case StorePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, "DATABASE_URL is required when LEDGER_STORE=postgres")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid ledger store '%s': must be one of %s, %s", c.Store, StoreMemory, StorePostgres))
	}

	if len(errs) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(errs, "; "))
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level '%s'", c.LogLevel)
	}
	return level, nil
}

// EventsEnabled reports whether a Kafka publisher should be created.
func (c *Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
