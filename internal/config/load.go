package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// defaultValues are applied before environment variables are read. Every key
// the Config struct knows about must appear here so viper picks up its
// environment override during Unmarshal.
var defaultValues = map[string]any{
	"server.port":              8080,
	"server.log_level":         "info",
	"database.url":             "",
	"provider.api_key":         "",
	"provider.base_url":        "https://api.perplexity.ai",
	"provider.model":           "llama-3.1-sonar-large-128k-online",
	"provider.timeout_seconds": 60,
	"task.worker_count":        2,
	"task.queue_size":          100,
}

// Load configuration from environment variables and optionally a config file.
// Environment variables (CLINED_ prefix, underscores for nesting) take
// precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	for key, value := range defaultValues {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix("CLINED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// An on-disk config file is optional; environment-only deployments are
	// the common case.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
