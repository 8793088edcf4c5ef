package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the demo configuration.
type Config struct {
	Format FormatConfig
	Log    LogConfig
}

// FormatConfig selects how prices are rendered.
type FormatConfig struct {
	Locale   string
	Currency string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string // debug, info, warn, error
}

// LoadConfig reads configuration with the following priority:
// 1. Environment variables with CATALOG_ prefix (e.g., CATALOG_FORMAT_CURRENCY)
// 2. catalog.toml in one of paths
// 3. Built-in defaults
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("catalog")
	v.SetConfigType("toml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	v.SetDefault("format.locale", "en-US")
	v.SetDefault("format.currency", "USD")
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{
		Format: FormatConfig{
			Locale:   v.GetString("format.locale"),
			Currency: v.GetString("format.currency"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
	}, nil
}
