package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. PLACEHOLDER_API_BASE_URL.
const EnvPrefix = "PLACEHOLDER"

// Config holds the application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Log     LogConfig     `mapstructure:"log"`
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
}

// APIConfig holds settings for the outgoing HTTP client
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	Retry   RetryConfig   `mapstructure:"retry"`
}

// RetryConfig controls how failed requests are retried
type RetryConfig struct {
	Attempts    int           `mapstructure:"attempts"`
	InitialWait time.Duration `mapstructure:"initial_wait"`
	Backoff     float64       `mapstructure:"backoff"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ServerConfig holds settings for the local stub API
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// StorageConfig holds the stub API database location
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from, in increasing priority: built-in defaults,
// the optional dotenv file, an optional placeholder.yaml found in configPaths,
// and PLACEHOLDER_* environment variables.
func Load(envFile string, configPaths ...string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetConfigName("placeholder")
	v.SetConfigType("yaml")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(configPaths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration, ignoring files and environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: bad defaults: %v", err))
	}
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://jsonplaceholder.typicode.com")
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("api.retry.attempts", 1)
	v.SetDefault("api.retry.initial_wait", "500ms")
	v.SetDefault("api.retry.backoff", 2.0)
	v.SetDefault("log.level", "info")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("storage.path", "data/badger")
}

// Validate rejects settings the client cannot work with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return &Error{Key: "api.base_url", Message: err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &Error{Key: "api.base_url", Message: fmt.Sprintf("unsupported scheme %q", u.Scheme)}
	}
	if u.Host == "" {
		return &Error{Key: "api.base_url", Message: "missing host"}
	}
	if c.API.Timeout <= 0 {
		return &Error{Key: "api.timeout", Message: "must be positive"}
	}
	if c.API.Retry.Attempts < 1 {
		return &Error{Key: "api.retry.attempts", Message: "must be at least 1"}
	}
	if c.API.Retry.InitialWait < 0 {
		return &Error{Key: "api.retry.initial_wait", Message: "must not be negative"}
	}
	if c.API.Retry.Backoff < 1 {
		return &Error{Key: "api.retry.backoff", Message: "must be at least 1"}
	}
	return nil
}

// Error reports an invalid configuration value.
type Error struct {
	Key     string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Key, e.Message)
}
