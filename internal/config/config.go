package config

import (
	"fmt"     // For formatting addresses
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For splitting list values
	"time"    // For durations

	"github.com/joho/godotenv" // For loading .env files
	"gopkg.in/yaml.v3"         // For the optional config file
)

// Config holds the application configuration
type Config struct {
	AppPort  int            `yaml:"port"`     // Application port
	IsProd   bool           `yaml:"prod"`     // Is production environment
	Database DatabaseConfig `yaml:"database"` // Storage settings
	Session  SessionConfig  `yaml:"session"`  // Session token settings
	Redis    RedisConfig    `yaml:"redis"`    // Catalog cache settings
	Log      LogConfig      `yaml:"log"`      // Logging settings
	// CORSOrigins enables CORS for the listed origins; empty disables it
	CORSOrigins []string `yaml:"cors_origins"`
}

// DatabaseConfig selects and addresses the relational store
type DatabaseConfig struct {
	Driver   string `yaml:"driver"`   // sqlite, mysql or postgres
	Path     string `yaml:"path"`     // SQLite file path
	Host     string `yaml:"host"`     // Database host
	Port     int    `yaml:"port"`     // Database port
	User     string `yaml:"user"`     // Database user
	Password string `yaml:"password"` // Database password
	Name     string `yaml:"name"`     // Database name
}

// SessionConfig controls the signed session cookie
type SessionConfig struct {
	Secret   string `yaml:"secret"`    // HMAC secret for session tokens
	TTLHours int    `yaml:"ttl_hours"` // Session lifetime
}

// RedisConfig addresses the optional catalog cache
type RedisConfig struct {
	Addr           string `yaml:"addr"`             // Redis server address, empty disables caching
	Password       string `yaml:"password"`         // Redis password
	DB             int    `yaml:"db"`               // Redis database number
	CatalogTTLSecs int    `yaml:"catalog_ttl_secs"` // How long catalogs stay cached
}

// LogConfig controls logrus output
type LogConfig struct {
	Level      string `yaml:"level"`        // debug, info, warn, error
	Format     string `yaml:"format"`       // text or json
	File       string `yaml:"file"`         // Optional rotating log file
	MaxSizeMB  int    `yaml:"max_size_mb"`  // Rotate after this size
	MaxBackups int    `yaml:"max_backups"`  // Rotated files to keep
	MaxAgeDays int    `yaml:"max_age_days"` // Days to keep rotated files
}

const devSessionSecret = "dev-secret-change-me"

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		AppPort: 10000,
		Database: DatabaseConfig{
			Driver: "sqlite",
			Path:   "fitness_app.db",
			Name:   "fitness_app",
		},
		Session: SessionConfig{Secret: devSessionSecret, TTLHours: 24},
		Redis:   RedisConfig{CatalogTTLSecs: 300},
		Log:     LogConfig{Level: "info", Format: "text", MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
	}
}

// LoadConfig loads configuration from .env, an optional YAML file and the environment
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present
	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(c *Config) {
	envOverrideInt(&c.AppPort, "PORT")
	envOverrideBool(&c.IsProd, "IS_PROD")

	envOverride(&c.Database.Driver, "DB_DRIVER")
	envOverride(&c.Database.Path, "DB_PATH")
	envOverride(&c.Database.Host, "DB_HOST")
	envOverrideInt(&c.Database.Port, "DB_PORT")
	envOverride(&c.Database.User, "DB_USER")
	envOverride(&c.Database.Password, "DB_PASSWORD")
	envOverride(&c.Database.Name, "DB_NAME")

	envOverride(&c.Session.Secret, "SESSION_SECRET")
	envOverrideInt(&c.Session.TTLHours, "SESSION_TTL_HOURS")

	envOverride(&c.Redis.Addr, "REDIS_ADDR")
	envOverride(&c.Redis.Password, "REDIS_PASS")
	envOverrideInt(&c.Redis.DB, "REDIS_DB")
	envOverrideInt(&c.Redis.CatalogTTLSecs, "CATALOG_CACHE_TTL_SECONDS")

	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.Format, "LOG_FORMAT")
	envOverride(&c.Log.File, "LOG_FILE")

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORSOrigins = splitList(v)
	}
}

// Validate rejects settings the server cannot start with
func (c *Config) Validate() error {
	if c.AppPort <= 0 || c.AppPort > 65535 {
		return fmt.Errorf("invalid port %d", c.AppPort)
	}
	switch c.Database.Driver {
	case "sqlite", "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Session.TTLHours <= 0 {
		return fmt.Errorf("session ttl must be positive, got %d", c.Session.TTLHours)
	}
	if c.IsProd && (c.Session.Secret == "" || c.Session.Secret == devSessionSecret) {
		return fmt.Errorf("SESSION_SECRET must be set in production")
	}
	return nil
}

// Addr is the listen address; the bind host is always all interfaces
func (c *Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.AppPort)
}

// SessionTTL is the session lifetime as a duration
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLHours) * time.Hour
}

// CatalogTTL is how long reference catalogs stay cached
func (c *Config) CatalogTTL() time.Duration {
	return time.Duration(c.Redis.CatalogTTLSecs) * time.Second
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envOverrideBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
