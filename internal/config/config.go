package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Locale  LocaleConfig  `yaml:"locale" envconfig:"LOCALE"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" envconfig:"MAX_UPLOAD_BYTES" default:"10485760"`
	RateLimit       RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"20"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"10"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/meteocli.log"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"data/reports"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// LocaleConfig selects the month-name language for generated tables and
// chart payloads.
type LocaleConfig struct {
	Language string `yaml:"language" envconfig:"LANGUAGE" default:"es"`
}

// Load loads configuration from environment variables and config file.
// Environment variables (prefix METEO) take precedence over the file.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("METEO", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, overrides, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, *overrides, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// getConfigFilePath returns the config file location, overridable for tests.
func getConfigFilePath() string {
	if path := os.Getenv("METEO_CONFIG_FILE"); path != "" {
		return path
	}
	return "config.yaml"
}

// fileOverrides shadows the yaml fields whose zero value is meaningful, so
// the merge can tell "absent from the file" apart from "explicitly false".
type fileOverrides struct {
	Server struct {
		RateLimit struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"rate_limit"`
	} `yaml:"server"`
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, *fileOverrides, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, err
	}

	var ov fileOverrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, nil, err
	}

	return &cfg, &ov, nil
}

// mergeConfigs layers the file config over the envconfig defaults. Values
// from the file win over defaults; explicitly set environment variables win
// over the file.
func mergeConfigs(fileConfig Config, overrides fileOverrides, envConfig Config) Config {
	out := envConfig

	if fileConfig.Server.Port != 0 && !envSet("METEO_SERVER_PORT") {
		out.Server.Port = fileConfig.Server.Port
	}
	if fileConfig.Server.ReadTimeout != 0 && !envSet("METEO_SERVER_READ_TIMEOUT") {
		out.Server.ReadTimeout = fileConfig.Server.ReadTimeout
	}
	if fileConfig.Server.WriteTimeout != 0 && !envSet("METEO_SERVER_WRITE_TIMEOUT") {
		out.Server.WriteTimeout = fileConfig.Server.WriteTimeout
	}
	if fileConfig.Server.IdleTimeout != 0 && !envSet("METEO_SERVER_IDLE_TIMEOUT") {
		out.Server.IdleTimeout = fileConfig.Server.IdleTimeout
	}
	if fileConfig.Server.ShutdownTimeout != 0 && !envSet("METEO_SERVER_SHUTDOWN_TIMEOUT") {
		out.Server.ShutdownTimeout = fileConfig.Server.ShutdownTimeout
	}
	if fileConfig.Server.MaxUploadBytes != 0 && !envSet("METEO_SERVER_MAX_UPLOAD_BYTES") {
		out.Server.MaxUploadBytes = fileConfig.Server.MaxUploadBytes
	}
	if overrides.Server.RateLimit.Enabled != nil && !envSet("METEO_SERVER_RATE_LIMIT_ENABLED") {
		out.Server.RateLimit.Enabled = *overrides.Server.RateLimit.Enabled
	}
	if fileConfig.Server.RateLimit.RPS != 0 && !envSet("METEO_SERVER_RATE_LIMIT_RPS") {
		out.Server.RateLimit.RPS = fileConfig.Server.RateLimit.RPS
	}
	if fileConfig.Server.RateLimit.Burst != 0 && !envSet("METEO_SERVER_RATE_LIMIT_BURST") {
		out.Server.RateLimit.Burst = fileConfig.Server.RateLimit.Burst
	}
	if fileConfig.Logging.Level != "" && !envSet("METEO_LOGGING_LEVEL") {
		out.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.Format != "" && !envSet("METEO_LOGGING_FORMAT") {
		out.Logging.Format = fileConfig.Logging.Format
	}
	if fileConfig.Logging.Output != "" && !envSet("METEO_LOGGING_OUTPUT") {
		out.Logging.Output = fileConfig.Logging.Output
	}
	if fileConfig.Logging.FilePath != "" && !envSet("METEO_LOGGING_FILE_PATH") {
		out.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if fileConfig.Paths.DataDir != "" && !envSet("METEO_PATHS_DATA_DIR") {
		out.Paths.DataDir = fileConfig.Paths.DataDir
	}
	if fileConfig.Paths.ReportsDir != "" && !envSet("METEO_PATHS_REPORTS_DIR") {
		out.Paths.ReportsDir = fileConfig.Paths.ReportsDir
	}
	if fileConfig.Paths.LogsDir != "" && !envSet("METEO_PATHS_LOGS_DIR") {
		out.Paths.LogsDir = fileConfig.Paths.LogsDir
	}
	if fileConfig.Locale.Language != "" && !envSet("METEO_LOCALE_LANGUAGE") {
		out.Locale.Language = fileConfig.Locale.Language
	}

	return out
}

func envSet(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

// validate checks the configuration for invalid values
func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output mode: %s", c.Logging.Output)
	}

	return nil
}
