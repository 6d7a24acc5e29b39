package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
		// StoragePath is where uploaded photos are written
		StoragePath string `yaml:"storage_path" env:"SERVER_STORAGE_PATH"`
		// PublicURL prefixes stored photo URLs; empty gives relative URLs
		PublicURL       string        `yaml:"public_url" env:"SERVER_PUBLIC_URL"`
		AllowedOrigins  []string      `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS" envSeparator:","`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	// Persistence mirrors the in-memory store into PostgreSQL. When
	// disabled the database section is ignored.
	Persistence struct {
		Enabled       bool          `yaml:"enabled" env:"PERSISTENCE_ENABLED"`
		FlushInterval time.Duration `yaml:"flush_interval" env:"PERSISTENCE_FLUSH_INTERVAL"`
		MigrationsDir string        `yaml:"migrations_dir" env:"PERSISTENCE_MIGRATIONS_DIR"`
	} `yaml:"persistence"`

	Seed struct {
		Enabled bool `yaml:"enabled" env:"SEED_ENABLED"`
	} `yaml:"seed"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.StoragePath = "./uploads"
	config.Server.AllowedOrigins = []string{"*"}
	config.Server.ShutdownTimeout = 10 * time.Second

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "coachdesk"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"

	config.Persistence.FlushInterval = 30 * time.Second
	config.Persistence.MigrationsDir = "./internal/app/migrations"

	config.Seed.Enabled = false

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// MaxPoolConns bounds database.max_open_conns.
const MaxPoolConns = 1000

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Server.Mode {
	case "development", "production", "test":
	default:
		return fmt.Errorf("server mode must be development, production or test, got %q", config.Server.Mode)
	}

	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logging format must be json or console, got %q", config.Logging.Format)
	}

	if !config.Persistence.Enabled {
		return nil
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required when persistence is enabled")
	}
	if config.Persistence.FlushInterval <= 0 {
		return fmt.Errorf("persistence flush interval must be positive")
	}
	if n := config.Database.MaxOpenConns; n < 1 || n > MaxPoolConns {
		return fmt.Errorf("database max open connections must be between 1 and %d, got %d", MaxPoolConns, n)
	}
	if n := config.Database.MaxIdleConns; n < 0 || n > config.Database.MaxOpenConns {
		return fmt.Errorf("database max idle connections must be between 0 and max open connections, got %d", n)
	}
	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection max lifetime: %w", err)
	}

	return nil
}

// IsProduction reports whether gin should run in release mode.
func (c *Config) IsProduction() bool {
	return c.Server.Mode == "production"
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
