package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(levelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port        int    `json:"port"`
	Host        string `json:"host"`
	Environment string `json:"environment"`

	// Database configuration
	DatabaseURL  string `json:"database_url"`
	DBMaxRetries int    `json:"db_max_retries"`
	Seed         bool   `json:"seed"`

	// Logging configuration, empty means derived from Environment
	LogLevel string `json:"log_level"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, DatabaseURL: %s, DBMaxRetries: %d, Seed: %t, LogLevel: %s}",
		c.Port, c.Host, c.Environment, database.MaskURL(c.DatabaseURL), c.DBMaxRetries, c.Seed, c.LogLevel)
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Level returns the logrus level: LOG_LEVEL when set, otherwise
// debug for development, error for production and info elsewhere
func (c *Config) Level() logrus.Level {
	if c.LogLevel != "" {
		if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
			return level
		}
	}
	return levelForEnvironment(c.Environment)
}

// Database returns the store settings derived from DatabaseURL
func (c *Config) Database() (database.DatabaseConfig, error) {
	dbConfig, err := database.ParseDatabaseURL(c.DatabaseURL)
	if err != nil {
		return database.DatabaseConfig{}, err
	}
	dbConfig.MaxRetries = c.DBMaxRetries
	return dbConfig, nil
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It validates the port, the log level and the DB_URI connection string
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "5555"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config := &Config{
		Port:         port,
		Host:         GetEnvWithDefault("APP_HOST", "localhost"),
		Environment:  GetEnvWithDefault("APP_ENV", "development"),
		DatabaseURL:  GetEnvWithDefault("DB_URI", database.DefaultDatabaseURL),
		DBMaxRetries: GetEnvAsType("DB_MAX_RETRIES", 5),
		Seed:         GetEnvAsType("APP_SEED", true),
		LogLevel:     GetEnvWithDefault("LOG_LEVEL", ""),
	}

	if config.LogLevel != "" {
		if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}
	if _, err := config.Database(); err != nil {
		return nil, fmt.Errorf("invalid DB_URI: %w", err)
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

func levelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
