package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Search   SearchConfig
	Cache    CacheConfig
	Resolver ResolverConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SearchConfig holds shopping-search provider configuration
type SearchConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	BaseURL        string        `mapstructure:"base_url"`
	ResultCount    int           `mapstructure:"result_count"`
	Timeout        time.Duration `mapstructure:"timeout"`
	CallsPerSecond float64       `mapstructure:"calls_per_second"`
}

// CacheConfig holds result-cache configuration
type CacheConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// ResolverConfig holds the resolution engine's policy parameters
type ResolverConfig struct {
	TolerancePercent float64       `mapstructure:"tolerance_percent"`
	WidenPercent     float64       `mapstructure:"widen_percent"`
	MaxFallbackWords int           `mapstructure:"max_fallback_words"`
	RoundDelay       time.Duration `mapstructure:"round_delay"`
	BatchWorkers     int           `mapstructure:"batch_workers"`
	Debug            bool          `mapstructure:"debug"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pricelens/")

	// Environment variable settings
	v.SetEnvPrefix("PRICELENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Search provider defaults
	v.SetDefault("search.base_url", "https://serpapi.com")
	v.SetDefault("search.result_count", 20)
	v.SetDefault("search.timeout", "6s")
	v.SetDefault("search.calls_per_second", 0.5)

	// Cache defaults
	v.SetDefault("cache.capacity", 100)

	// Resolver policy defaults
	v.SetDefault("resolver.tolerance_percent", 10.0)
	v.SetDefault("resolver.widen_percent", 20.0)
	v.SetDefault("resolver.max_fallback_words", 6)
	v.SetDefault("resolver.round_delay", "1s")
	v.SetDefault("resolver.batch_workers", 2)
	v.SetDefault("resolver.debug", false)
}

// validate validates the configuration. A missing provider credential is
// fatal here so the engine refuses to construct rather than failing lazily
// per call.
func validate(config *Config) error {
	if config.Search.APIKey == "" {
		return fmt.Errorf("search provider API key is required (set PRICELENS_SEARCH_API_KEY)")
	}

	if config.Cache.Capacity <= 0 {
		return fmt.Errorf("cache capacity must be positive, got: %d", config.Cache.Capacity)
	}

	if config.Resolver.BatchWorkers < 1 || config.Resolver.BatchWorkers > 8 {
		return fmt.Errorf("batch workers must be between 1 and 8, got: %d", config.Resolver.BatchWorkers)
	}

	return nil
}
