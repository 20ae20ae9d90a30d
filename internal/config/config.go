package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Provider ProviderConfig `mapstructure:"provider" validate:"required"`
	Task     TaskConfig     `mapstructure:"task" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// ProviderConfig contains the settings for the external completion provider.
type ProviderConfig struct {
	// APIKey authenticates requests to the provider. It may be absent at
	// startup; generation calls fail individually until one is configured,
	// while the catalog and fallback endpoints keep serving.
	APIKey string `mapstructure:"api_key"`

	// BaseURL is the provider endpoint root, without a trailing slash.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// Model is the completion model requested on every call.
	Model string `mapstructure:"model" validate:"required"`

	// TimeoutSeconds bounds a single provider round trip.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"required,gt=0,lte=300"`
}

// TaskConfig contains the settings for the background persistence workers.
type TaskConfig struct {
	WorkerCount int `mapstructure:"worker_count" validate:"required,gt=0,lte=32"`
	QueueSize   int `mapstructure:"queue_size" validate:"required,gt=0"`
}
