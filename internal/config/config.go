package config

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

const (
	defaultMessage    = "Hello (default)\n"
	defaultAPIKey     = "no-key"
	defaultVersion    = "dev"
	defaultServerAddr = "0.0.0.0:5000"
	defaultLogLevel   = "info"
)

const (
	envMessage  = "APP_MESSAGE"
	envAPIKey   = "API_KEY"
	envVersion  = "APP_VERSION"
	envLogLevel = "LOG_LEVEL"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

type Config struct {
	Message    string
	APIKey     string
	Version    string
	ServerAddr string
	LogLevel   log.Level
}

// New builds a Config from explicit values, leaving the ambient settings at
// their defaults.
func New(message, apiKey, version string) *Config {
	return &Config{
		Message:    message,
		APIKey:     apiKey,
		Version:    version,
		ServerAddr: defaultServerAddr,
		LogLevel:   log.InfoLevel,
	}
}

func Load() (*Config, error) {
	cfg := New(
		getEnvOrDefault(envMessage, defaultMessage),
		getEnvOrDefault(envAPIKey, defaultAPIKey),
		getEnvOrDefault(envVersion, defaultVersion),
	)

	level, err := parseLogLevel(getEnvOrDefault(envLogLevel, defaultLogLevel))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

func parseLogLevel(value string) (log.Level, error) {
	level, err := log.ParseLevel(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidLogLevel, envLogLevel, value)
	}
	return level, nil
}

// getEnvOrDefault only falls back when the variable is unset.
func getEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
