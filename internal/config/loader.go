package config

import (
	"strconv"
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(l.config, overrides)
	}

	// Validate once everything is merged so a flag can repair a bad env value
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Database overrides
	DBType     *string
	DBHost     *string
	DBPort     *int
	DBUser     *string
	DBPassword *string
	DBName     *string
	DBPath     *string
	PoolSize   *int

	// Server overrides
	Port            *int
	ShutdownTimeout *time.Duration

	// Application overrides
	Environment *string

	// Client overrides
	APIURL        *string
	ClientTimeout *time.Duration
	PollInterval  *time.Duration
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Database overrides
	if overrides.DBType != nil {
		config.Database.Type = *overrides.DBType
	}
	if overrides.DBHost != nil {
		config.Database.Host = *overrides.DBHost
	}
	if overrides.DBPort != nil {
		config.Database.Port = *overrides.DBPort
	}
	if overrides.DBUser != nil {
		config.Database.User = *overrides.DBUser
	}
	if overrides.DBPassword != nil {
		config.Database.Password = *overrides.DBPassword
	}
	if overrides.DBName != nil {
		config.Database.Name = *overrides.DBName
	}
	if overrides.DBPath != nil {
		config.Database.Path = *overrides.DBPath
	}
	if overrides.PoolSize != nil {
		config.Database.PoolSize = *overrides.PoolSize
	}

	// Server overrides
	if overrides.Port != nil {
		config.Server.Port = *overrides.Port
	}
	if overrides.ShutdownTimeout != nil {
		config.Server.ShutdownTimeout = *overrides.ShutdownTimeout
	}

	// Application overrides
	if overrides.Environment != nil {
		config.Application.Environment = *overrides.Environment
	}

	// Client overrides
	if overrides.APIURL != nil {
		config.Client.APIURL = *overrides.APIURL
	}
	if overrides.ClientTimeout != nil {
		config.Client.Timeout = *overrides.ClientTimeout
	}
	if overrides.PollInterval != nil {
		config.Client.PollInterval = *overrides.PollInterval
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}
