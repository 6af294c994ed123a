package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

/* Config é um pacote auxiliar. Poderia ser uma lib externa*/

type Config struct {
	APIBaseURL     string        `mapstructure:"VITE_API_BASE_URL"`
	Port           string        `mapstructure:"PORT"`
	StaleTime      time.Duration `mapstructure:"STALE_TIME"`
	GCTime         time.Duration `mapstructure:"GC_TIME"`
	FallbackMode   string        `mapstructure:"FALLBACK_MODE"`
	CacheBackend   string        `mapstructure:"CACHE_BACKEND"`
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RedisPassword  string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB        int           `mapstructure:"REDIS_DB"`
	APIRequestRate float64       `mapstructure:"API_RPS"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]interface{}{
	"VITE_API_BASE_URL": "http://localhost:5070/api/v1",
	"PORT":              "8080",
	"STALE_TIME":        "5m",
	"GC_TIME":           "5m",
	"FALLBACK_MODE":     "always",
	"CACHE_BACKEND":     "memory",
	"REDIS_ADDR":        "localhost:6379",
	"REDIS_PASSWORD":    "",
	"REDIS_DB":          0,
	"API_RPS":           0,
	"LOG_LEVEL":         "info",
}

// GetConfig reads .env (TOML, optional) from the working directory and the environment
func GetConfig() (*Config, error) {
	return Load(".")
}

// Load reads configuration with .env looked up in dir. Environment variables win.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &config, nil
}

// Validate checks the values the console cannot start without
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("VITE_API_BASE_URL must be an absolute URL (got %q)", c.APIBaseURL)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.StaleTime < 0 {
		return fmt.Errorf("STALE_TIME cannot be negative")
	}
	if c.GCTime <= 0 {
		return fmt.Errorf("GC_TIME must be positive")
	}
	switch c.FallbackMode {
	case "always", "unreachable":
	default:
		return fmt.Errorf("FALLBACK_MODE must be always or unreachable (got %q)", c.FallbackMode)
	}
	switch c.CacheBackend {
	case "memory":
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when CACHE_BACKEND is redis")
		}
	default:
		return fmt.Errorf("CACHE_BACKEND must be memory or redis (got %q)", c.CacheBackend)
	}
	if c.APIRequestRate < 0 {
		return fmt.Errorf("API_RPS cannot be negative")
	}
	return nil
}
