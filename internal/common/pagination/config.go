// Package pagination provides a reusable offset-pagination framework:
// request parsing and validation, offset/total-pages calculation, and a
// generic paginated response wrapper.
package pagination

import (
	"os"
	"strconv"
)

// Config holds pagination configuration settings.
// These values can be loaded from the application config file or from
// environment variables.
type Config struct {
	DefaultPage int // Default page index (0-based, typically 0)
	DefaultSize int // Default items per page (typically 10)
	MaxSize     int // Maximum allowed items per page (typically 100)
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=0, size=10, max=100
func DefaultConfig() Config {
	return Config{
		DefaultPage: 0,
		DefaultSize: 10,
		MaxSize:     100,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_PAGE: Default page index
//   - PAGINATION_DEFAULT_PAGE_SIZE: Default items per page (default-page-size)
//   - PAGINATION_MAX_PAGE_SIZE: Maximum items per page (max-page-size)
//
// Falls back to DefaultConfig() if environment variables are not set.
func LoadFromEnv() Config {
	return DefaultConfig().WithEnvOverrides()
}

// WithEnvOverrides returns a copy of the config with any PAGINATION_*
// environment variables applied on top. Unset or unparsable variables
// leave the existing value untouched.
func (c Config) WithEnvOverrides() Config {
	c.DefaultPage = getEnvAsInt("PAGINATION_DEFAULT_PAGE", c.DefaultPage)
	c.DefaultSize = getEnvAsInt("PAGINATION_DEFAULT_PAGE_SIZE", c.DefaultSize)
	c.MaxSize = getEnvAsInt("PAGINATION_MAX_PAGE_SIZE", c.MaxSize)
	return c
}

// getEnvAsInt retrieves an environment variable and parses it as an integer.
// Returns the default value if the variable is not set or cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}
