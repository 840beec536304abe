// Package config loads application configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"catalog-api/internal/common/pagination"
	pkgconfig "catalog-api/pkg/config"
)

// AppConfig represents the application configuration.
type AppConfig struct {
	Server struct {
		Addr            string        `yaml:"addr"`
		RequestTimeout  time.Duration `yaml:"request_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`

	Database struct {
		// Backend selects the storage backend: "postgres" or "memory".
		Backend string `yaml:"backend"`
		DSN     string `yaml:"dsn"`
	} `yaml:"database"`

	Pagination struct {
		DefaultPageSize int `yaml:"default-page-size"`
		MaxPageSize     int `yaml:"max-page-size"`
	} `yaml:"pagination"`

	Throttle struct {
		RPS   float64 `yaml:"rps"`
		Burst int     `yaml:"burst"`
	} `yaml:"throttle"`
}

// defaults returns a config populated with default values.
func defaults() *AppConfig {
	cfg := &AppConfig{}
	cfg.Server.Addr = ":8080"
	cfg.Server.RequestTimeout = 30 * time.Second
	cfg.Server.ShutdownTimeout = 10 * time.Second
	cfg.Database.Backend = "postgres"
	cfg.Pagination.DefaultPageSize = 10
	cfg.Pagination.MaxPageSize = 100
	cfg.Throttle.RPS = 100
	cfg.Throttle.Burst = 200
	return cfg
}

// Load loads the application configuration. It starts from defaults, merges
// the YAML file at path if it exists, then applies environment variable
// overrides. The path parameter is expected to come from a trusted source
// (command-line argument or hardcoded default).
func Load(path string) (*AppConfig, error) {
	cfg := defaults()

	if path != "" {
		// #nosec G304 -- path is provided by trusted source (CLI arg or default), not user input
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// Missing file is fine, env vars and defaults apply.
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *AppConfig) applyEnvOverrides() {
	c.Server.Addr = pkgconfig.GetEnvString("SERVER_ADDR", c.Server.Addr)
	c.Server.RequestTimeout = pkgconfig.GetEnvDuration("SERVER_REQUEST_TIMEOUT", c.Server.RequestTimeout)
	c.Server.ShutdownTimeout = pkgconfig.GetEnvDuration("SERVER_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
	c.Database.Backend = pkgconfig.GetEnvString("STORAGE_BACKEND", c.Database.Backend)
	c.Database.DSN = pkgconfig.GetEnvString("DATABASE_URL", c.Database.DSN)
	c.Pagination.DefaultPageSize = pkgconfig.GetEnvInt("PAGINATION_DEFAULT_PAGE_SIZE", c.Pagination.DefaultPageSize)
	c.Pagination.MaxPageSize = pkgconfig.GetEnvInt("PAGINATION_MAX_PAGE_SIZE", c.Pagination.MaxPageSize)
}

func (c *AppConfig) validate() error {
	if c.Database.Backend != "postgres" && c.Database.Backend != "memory" {
		return fmt.Errorf("database backend must be postgres or memory, got %q", c.Database.Backend)
	}
	if c.Database.Backend == "postgres" && c.Database.DSN == "" {
		return fmt.Errorf("database dsn is required for the postgres backend")
	}
	if c.Pagination.DefaultPageSize < 1 {
		return fmt.Errorf("default-page-size must be positive, got %d", c.Pagination.DefaultPageSize)
	}
	if c.Pagination.MaxPageSize < 1 {
		return fmt.Errorf("max-page-size must be positive, got %d", c.Pagination.MaxPageSize)
	}
	if c.Pagination.DefaultPageSize > c.Pagination.MaxPageSize {
		return fmt.Errorf("default-page-size %d exceeds max-page-size %d",
			c.Pagination.DefaultPageSize, c.Pagination.MaxPageSize)
	}
	if c.Throttle.RPS <= 0 || c.Throttle.Burst < 1 {
		return fmt.Errorf("throttle rps and burst must be positive")
	}
	return nil
}

// PaginationConfig converts the pagination section into the config consumed
// by the pagination package.
func (c *AppConfig) PaginationConfig() pagination.Config {
	return pagination.Config{
		DefaultPage: 0,
		DefaultSize: c.Pagination.DefaultPageSize,
		MaxSize:     c.Pagination.MaxPageSize,
	}
}
