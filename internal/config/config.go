// Package config loads process configuration from the environment.
//
// Values are resolved as OS environment first, then an optional .env file.
// Configuration is read once at startup and never modified.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the top-level configuration struct
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"local" validate:"oneof=local dev staging prod"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	Server   ServerConfig
	Database DatabaseConfig
	Status   StatusConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080" validate:"required,numeric"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"10s" validate:"gt=0"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s" validate:"gt=0"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s" validate:"gt=0"`
	AllowOrigins    string        `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
}

// DatabaseConfig holds the optional catalog database. An empty URL selects
// the built-in catalog.
type DatabaseConfig struct {
	URL            string        `envconfig:"DATABASE_URL" validate:"omitempty,url"`
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"10s" validate:"gt=0"`
}

// StatusConfig controls the status endpoint
type StatusConfig struct {
	DefaultArea string `envconfig:"DEFAULT_AREA" default:"jeonju-hanok" validate:"required"`
	// StrictAreaLookup reports unknown areas with 404 instead of an in-band 200
	StrictAreaLookup bool `envconfig:"STRICT_AREA_LOOKUP" default:"false"`
	// DeterministicNoise seeds jitter per (area, hour, 5-minute bucket)
	DeterministicNoise bool `envconfig:"DETERMINISTIC_NOISE" default:"true"`
}

// ConfigErrorType classifies a ConfigError
type ConfigErrorType string

const (
	ErrParsing    ConfigErrorType = "parsing"
	ErrValidation ConfigErrorType = "validation"
)

// ConfigError is returned by Load
type ConfigError struct {
	Type    ConfigErrorType
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load reads a .env file if present, then the environment, and validates the result
func Load() (*Config, error) {
	// Missing .env is fine; existing variables are never overridden.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &ConfigError{
			Type:    ErrParsing,
			Message: "failed to process environment configuration",
			Err:     err,
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, &ConfigError{
			Type:    ErrValidation,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return &cfg, nil
}
