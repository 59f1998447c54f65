package config

import (
	"os"
	"strconv"
	"time"

	"todo-app/internal/store"
)

// Config holds all configuration options for the todo application
type Config struct {
	Database    DatabaseConfig
	Server      ServerConfig
	Application ApplicationConfig
	Client      ClientConfig
}

// DatabaseConfig holds database-related configuration.
// Port and User fall back to backend-specific defaults when left unset.
type DatabaseConfig struct {
	Type     string `env:"DB_TYPE"`
	Host     string `env:"DB_HOST"`
	Port     int    `env:"DB_PORT"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
	Path     string `env:"DB_PATH"`
	PoolSize int    `env:"DB_POOL_SIZE"`
}

// ServerConfig holds HTTP listener configuration
type ServerConfig struct {
	Port            int           `env:"PORT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// ApplicationConfig holds static process metadata
type ApplicationConfig struct {
	Name        string
	Version     string
	Environment string `env:"APP_ENV"`
}

// ClientConfig holds terminal client configuration
type ClientConfig struct {
	APIURL       string        `env:"TODO_API_URL"`
	Timeout      time.Duration `env:"TODO_CLIENT_TIMEOUT"`
	PollInterval time.Duration `env:"TODO_CLIENT_POLL_INTERVAL"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Type:     string(store.KindMySQL),
			Host:     "localhost",
			Name:     "tododb",
			Path:     "todo.db",
			PoolSize: store.DefaultPoolSize,
		},
		Server: ServerConfig{
			Port:            3000,
			ShutdownTimeout: 10 * time.Second,
		},
		Application: ApplicationConfig{
			Name:        "Todo App - 3-Tier Architecture",
			Version:     "1.0.0",
			Environment: "development",
		},
		Client: ClientConfig{
			APIURL:       "http://localhost:3000",
			Timeout:      30 * time.Second,
			PollInterval: 5 * time.Second,
		},
	}
}

// GetDatabaseKind returns the parsed backend kind
func (c *Config) GetDatabaseKind() (store.Kind, error) {
	return store.ParseKind(c.Database.Type)
}

// GetDatabasePort returns the configured port or the backend default
func (c *Config) GetDatabasePort() int {
	if c.Database.Port > 0 {
		return c.Database.Port
	}
	kind, err := c.GetDatabaseKind()
	if err != nil {
		return 0
	}
	return kind.DefaultPort()
}

// GetDatabaseUser returns the configured user or the backend default
func (c *Config) GetDatabaseUser() string {
	if c.Database.User != "" {
		return c.Database.User
	}
	kind, err := c.GetDatabaseKind()
	if err != nil {
		return ""
	}
	return kind.DefaultUser()
}

// StoreOptions converts the database configuration into store options
func (c *Config) StoreOptions() (store.Options, error) {
	kind, err := c.GetDatabaseKind()
	if err != nil {
		return store.Options{}, err
	}
	return store.Options{
		Kind:     kind,
		Host:     c.Database.Host,
		Port:     c.GetDatabasePort(),
		User:     c.GetDatabaseUser(),
		Password: c.Database.Password,
		Database: c.Database.Name,
		Path:     c.Database.Path,
		PoolSize: c.Database.PoolSize,
	}, nil
}

// ListenAddr returns the HTTP listen address
func (c *Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dbType := os.Getenv("DB_TYPE"); dbType != "" {
		c.Database.Type = dbType
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		c.Database.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Database.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		c.Database.User = user
	}
	if password, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Database.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		c.Database.Name = name
	}
	if path := os.Getenv("DB_PATH"); path != "" {
		c.Database.Path = path
	}
	if size := os.Getenv("DB_POOL_SIZE"); size != "" {
		c.Database.PoolSize = ParseIntWithFallback(size, c.Database.PoolSize)
	}

	// Server configuration
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = ParseIntWithFallback(port, c.Server.Port)
	}
	if timeout := os.Getenv("SHUTDOWN_TIMEOUT"); timeout != "" {
		c.Server.ShutdownTimeout = ParseDurationWithFallback(timeout, c.Server.ShutdownTimeout)
	}

	// Application configuration
	if env := os.Getenv("APP_ENV"); env != "" {
		c.Application.Environment = env
	}

	// Client configuration
	if url := os.Getenv("TODO_API_URL"); url != "" {
		c.Client.APIURL = url
	}
	if timeout := os.Getenv("TODO_CLIENT_TIMEOUT"); timeout != "" {
		c.Client.Timeout = ParseDurationWithFallback(timeout, c.Client.Timeout)
	}
	if interval := os.Getenv("TODO_CLIENT_POLL_INTERVAL"); interval != "" {
		c.Client.PollInterval = ParseDurationWithFallback(interval, c.Client.PollInterval)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	kind, err := c.GetDatabaseKind()
	if err != nil {
		return &ConfigError{Field: "database.type", Message: err.Error()}
	}
	if kind == store.KindSQLite {
		if c.Database.Path == "" {
			return &ConfigError{Field: "database.path", Message: "database path cannot be empty"}
		}
	} else {
		if c.Database.Host == "" {
			return &ConfigError{Field: "database.host", Message: "database host cannot be empty"}
		}
		if c.Database.Name == "" {
			return &ConfigError{Field: "database.name", Message: "database name cannot be empty"}
		}
	}
	if c.Database.Port < 0 || c.Database.Port > 65535 {
		return &ConfigError{Field: "database.port", Message: "database port must be between 0 and 65535"}
	}
	if c.Database.PoolSize < 1 {
		return &ConfigError{Field: "database.pool_size", Message: "pool size must be at least 1"}
	}

	// Validate server configuration
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: "listen port must be between 1 and 65535"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	// Validate application configuration
	if c.Application.Environment == "" {
		return &ConfigError{Field: "application.environment", Message: "environment label cannot be empty"}
	}

	// Validate client configuration
	if c.Client.APIURL == "" {
		return &ConfigError{Field: "client.api_url", Message: "API URL cannot be empty"}
	}
	if c.Client.Timeout <= 0 {
		return &ConfigError{Field: "client.timeout", Message: "client timeout must be positive"}
	}
	if c.Client.PollInterval <= 0 {
		return &ConfigError{Field: "client.poll_interval", Message: "poll interval must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
