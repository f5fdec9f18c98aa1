package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Environment classes recognized by the diagnostics subsystem.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvEducational = "educational"
)

// Config holds the complete application configuration.
type Config struct {
	API         APIConfig         `mapstructure:"api"`
	Diagnostics DiagnosticsConfig `mapstructure:"diagnostics"`
	Log         LogConfig         `mapstructure:"log"`
}

// APIConfig holds HTTP server configuration.
type APIConfig struct {
	Host                    string        `mapstructure:"host"`
	Port                    string        `mapstructure:"port"`
	ReadTimeout             time.Duration `mapstructure:"read_timeout"`
	WriteTimeout            time.Duration `mapstructure:"write_timeout"`
	EnableDefaultMiddleware *bool         `mapstructure:"enable_default_middleware"`
}

// Addr returns the listen address for the HTTP server.
func (a APIConfig) Addr() string {
	return a.Host + ":" + a.Port
}

// DiagnosticsConfig controls error classification, envelope formatting and
// process recovery behavior.
type DiagnosticsConfig struct {
	// Environment selects the runtime class: development, production or
	// educational. Debug blocks in error envelopes are only emitted for
	// development-like environments.
	Environment string `mapstructure:"environment"`
	// Educational enables the educational block (guidance content) in
	// error envelopes.
	Educational *bool `mapstructure:"educational"`
	// VerboseErrorCreation emits a debug log entry every time the error
	// factory constructs an error value.
	VerboseErrorCreation bool `mapstructure:"verbose_error_creation"`
	// ExitGraceDelay is how long the recovery coordinator waits before
	// terminating the process, giving buffered log writes a chance to
	// flush. Advisory, not a flush guarantee.
	ExitGraceDelay time.Duration `mapstructure:"exit_grace_delay"`
}

// EducationalEnabled reports whether educational blocks should be included.
// Defaults to true outside production.
func (d DiagnosticsConfig) EducationalEnabled() bool {
	if d.Educational != nil {
		return *d.Educational
	}
	return d.Environment != EnvProduction
}

// DevelopmentLike reports whether the environment permits debug detail
// (stack frames, runtime identifiers) in responses.
func (d DiagnosticsConfig) DevelopmentLike() bool {
	return d.Environment == EnvDevelopment || d.Environment == EnvEducational
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// TutorialPrefix, when non-empty, is prepended to text-format log
	// lines. Used by the educational environment to mark tutorial output.
	TutorialPrefix string `mapstructure:"tutorial_prefix"`
}

// New creates a new Config instance from Viper.
func New(v *viper.Viper) *Config {
	var config Config

	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("unable to decode config: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}

	return &config
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.API.Port)
	if err != nil {
		return fmt.Errorf("api.port must be numeric: %w", err)
	}
	if port < 1 || port > 65535 {
		return errors.New("api.port must be between 1 and 65535")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text; got %q", c.Log.Format)
	}

	switch c.Diagnostics.Environment {
	case EnvDevelopment, EnvProduction, EnvEducational:
	default:
		return fmt.Errorf("diagnostics.environment must be development, production or educational; got %q",
			c.Diagnostics.Environment)
	}

	if c.Diagnostics.ExitGraceDelay < 0 || c.Diagnostics.ExitGraceDelay > 10*time.Second {
		return errors.New("diagnostics.exit_grace_delay must be between 0 and 10s")
	}

	return nil
}
