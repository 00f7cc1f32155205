package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds service configuration loaded from the environment
type Config struct {
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"stok-takip"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	HTTPPort    string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"stoktakipdb"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	RedisAddr    string   `envconfig:"REDIS_ADDR"`
	RedisDB      int      `envconfig:"REDIS_DB" default:"0"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
