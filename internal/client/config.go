package client

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Default configuration values.
const (
	// DefaultAPIURL is the default API server URL.
	DefaultAPIURL = "http://localhost:8080"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// EnvAPIURL is the environment variable name for the API URL.
	EnvAPIURL = "HELLOTUTOR_CLIENT_API_URL"

	// EnvTimeout is the environment variable name for the timeout duration.
	EnvTimeout = "HELLOTUTOR_CLIENT_TIMEOUT"
)

// Config holds the client configuration for connecting to a hellotutor
// server.
type Config struct {
	// APIURL is the base URL of the API server. Must include the scheme.
	APIURL string

	// Timeout is the maximum duration for HTTP requests.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		APIURL:  DefaultAPIURL,
		Timeout: DefaultTimeout,
	}
}

// LoadConfig loads configuration from environment variables, falling back to
// defaults. Returns an error if the timeout variable is set but invalid.
func LoadConfig() (Config, error) {
	config := DefaultConfig()

	if url := os.Getenv(EnvAPIURL); url != "" {
		config.APIURL = url
	}

	if timeout := os.Getenv(EnvTimeout); timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		config.Timeout = parsed
	}

	return config, config.Validate()
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.APIURL == "" {
		return errors.New("API URL cannot be empty")
	}
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("API URL must start with http:// or https://; got %q", c.APIURL)
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	return nil
}
