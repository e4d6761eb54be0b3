// Package config manages configuration for the fnbridge Lambda entrypoint
// and the local harness. It uses Viper for unified configuration management
// from files and environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/fnbridge/fnbridge/internal/constants"
)

// GatewayCompat holds the legacy gateway wire-format switches.
type GatewayCompat struct {
	// StripBodyQuotes removes literal double quotes from gateway response
	// bodies. On by default for wire compatibility.
	StripBodyQuotes bool `mapstructure:"strip_body_quotes"`
}

// Config is the unified configuration for both entrypoints. Values load from
// an optional YAML file and FNBRIDGE_-prefixed environment variables, with
// the environment taking precedence.
type Config struct {
	Environment constants.Environment `mapstructure:"environment" validate:"omitempty,oneof=development production"`
	LogLevel    string                `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`

	// Local harness server
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535"`

	GatewayCompat GatewayCompat `mapstructure:"gateway_compat"`
}

var validate = validator.New()

// Load loads the configuration using Viper.
// Environment variables take precedence over config file values.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName(constants.ProjectName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine; Lambda deployments use env vars only.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	v.SetEnvPrefix("FNBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", string(constants.Development))
	v.SetDefault("log_level", "info")
	v.SetDefault("port", 8080)
	v.SetDefault("gateway_compat.strip_body_quotes", true)
}

// bindEnvVars binds every config key explicitly so nested keys resolve from
// the environment without a config file present.
func bindEnvVars(v *viper.Viper) {
	keys := []string{
		"environment",
		"log_level",
		"port",
		"gateway_compat.strip_body_quotes",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// SlogLevel converts the configured log level string to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
