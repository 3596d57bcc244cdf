package config

import (
	"os"
)

// Config holds all configuration for the storefront
type Config struct {
	ServiceName     string
	LogLevel        string
	LogFile         string
	StorageDriver   string
	StorageDSN      string
	RedisAddr       string
	RedisPrefix     string
	RabbitMQURL     string
	HTTPHealthPort  string
	CatalogFile     string
	DefaultLanguage string
}

// Storage drivers understood by Open in the storage package.
const (
	DriverSQL    = "sql"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		ServiceName:     getEnv("SERVICE_NAME", "storefront"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         getEnv("LOG_FILE", "storefront.log"),
		StorageDriver:   getEnv("STORAGE_DRIVER", DriverSQL),
		StorageDSN:      getEnv("STORAGE_DSN", "storefront.db"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPrefix:     getEnv("REDIS_PREFIX", "storefront:"),
		RabbitMQURL:     getEnv("RABBITMQ_URL", ""),
		HTTPHealthPort:  getEnv("HTTP_HEALTH_PORT", ""),
		CatalogFile:     getEnv("CATALOG_FILE", ""),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "ml"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
