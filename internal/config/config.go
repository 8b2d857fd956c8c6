package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrMissingWebhookSecret is returned when no webhook signing secret is configured.
var ErrMissingWebhookSecret = errors.New("webhook signing secret is required")

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port         string `yaml:"port" env:"SERVER_PORT"`
		Mode         string `yaml:"mode" env:"SERVER_MODE"`
		MaxBodyBytes int64  `yaml:"max_body_bytes" env:"SERVER_MAX_BODY_BYTES"`
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

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Verification struct {
		BaseURL string        `yaml:"base_url" env:"VERIFICATION_BASE_URL"`
		APIKey  string        `yaml:"api_key" env:"VERIFICATION_API_KEY"`
		Timeout time.Duration `yaml:"timeout" env:"VERIFICATION_TIMEOUT"`
	} `yaml:"verification"`

	Revalidation struct {
		BaseURL string        `yaml:"base_url" env:"REVALIDATION_BASE_URL"`
		Token   string        `yaml:"token" env:"REVALIDATION_TOKEN"`
		Timeout time.Duration `yaml:"timeout" env:"REVALIDATION_TIMEOUT"`
	} `yaml:"revalidation"`

	Webhook struct {
		Secret          string        `yaml:"secret" env:"WEBHOOK_SECRET"`
		SignatureHeader string        `yaml:"signature_header" env:"WEBHOOK_SIGNATURE_HEADER"`
		Tolerance       time.Duration `yaml:"tolerance" env:"WEBHOOK_TOLERANCE"`
	} `yaml:"webhook"`
}

// LoadConfig loads configuration from a YAML file, an optional .env file and the environment.
// A missing webhook secret is reported here so the process never starts serving without one.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	if err := applyEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadDotEnv populates unset environment variables from path, if the file exists.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.MaxBodyBytes = 1 << 20

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "reviews"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Verification.Timeout = 10 * time.Second
	config.Revalidation.Timeout = 10 * time.Second

	config.Webhook.SignatureHeader = "X-Webhook-Signature"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Webhook.Secret) == "" {
		return ErrMissingWebhookSecret
	}

	if config.Webhook.SignatureHeader == "" {
		return fmt.Errorf("webhook signature header is required")
	}

	if config.Webhook.Tolerance < 0 {
		return fmt.Errorf("webhook tolerance must not be negative")
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection max lifetime: %w", err)
	}

	if config.Verification.BaseURL == "" {
		return fmt.Errorf("verification base URL is required")
	}

	if config.Revalidation.BaseURL == "" {
		return fmt.Errorf("revalidation base URL is required")
	}

	if config.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server max body bytes must be positive")
	}

	return nil
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
