package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Scraper ScraperConfig
	Cache   CacheConfig
	Chat    ChatConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ScraperConfig holds browser scraper configuration
type ScraperConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	Headless      bool          `mapstructure:"headless"`
	BrowserBin    string        `mapstructure:"browser_bin"`
	SearchTimeout time.Duration `mapstructure:"search_timeout"`
	RenderDelay   time.Duration `mapstructure:"render_delay"`
	RatePerMinute int           `mapstructure:"rate_per_minute"`
}

// CacheConfig holds result cache configuration
type CacheConfig struct {
	Type    string        `mapstructure:"type"` // "memory" or "lru"
	TTL     time.Duration `mapstructure:"ttl"`
	LRUSize int           `mapstructure:"lru_size"`
}

// ChatConfig holds chat-facing configuration
type ChatConfig struct {
	DefaultName string `mapstructure:"default_name"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/mtg-price-api/")

	// Environment variable settings
	v.SetEnvPrefix("MTGPRICE")
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
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Scraper defaults
	v.SetDefault("scraper.base_url", "https://www.tcgplayer.com/")
	v.SetDefault("scraper.headless", true)
	v.SetDefault("scraper.browser_bin", "")
	v.SetDefault("scraper.search_timeout", "45s")
	v.SetDefault("scraper.render_delay", "2500ms")
	v.SetDefault("scraper.rate_per_minute", 12)

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "30s")
	v.SetDefault("cache.lru_size", 256)

	// Chat defaults
	v.SetDefault("chat.default_name", "Streamer")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cache.Type != "memory" && config.Cache.Type != "lru" {
		return fmt.Errorf("cache type must be 'memory' or 'lru', got: %s", config.Cache.Type)
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got: %s", config.Cache.TTL)
	}

	if config.Scraper.BaseURL == "" {
		return fmt.Errorf("scraper base URL is required")
	}

	if config.Scraper.SearchTimeout <= 0 {
		return fmt.Errorf("scraper search timeout must be positive, got: %s", config.Scraper.SearchTimeout)
	}

	return nil
}
