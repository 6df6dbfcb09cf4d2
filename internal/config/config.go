package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Catalog sources
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Database       DatabaseConfig
	Catalog        CatalogConfig
	NATS           NATSConfig
	RateLimit      RateLimitConfig
	APIPort        string
	LogLevel       string
	SupportContact string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int
	MinConns int
}

type CatalogConfig struct {
	Source string
	File   string
}

type NATSConfig struct {
	URL     string
	Subject string
	Queue   string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			Name:     getEnv("DB_NAME", "vehicles"),
			User:     getEnv("DB_USER", "vehicles"),
			Password: getEnv("DB_PASSWORD", ""),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 10),
			MinConns: getEnvInt("DB_MIN_CONNS", 1),
		},
		Catalog: CatalogConfig{
			Source: getEnv("CATALOG_SOURCE", SourceEmbedded),
			File:   getEnv("CATALOG_FILE", "vehicles.json"),
		},
		NATS: NATSConfig{
			URL:     getEnv("NATS_URL", ""),
			Subject: getEnv("NATS_SUBJECT", "vehicles.lookup"),
			Queue:   getEnv("NATS_QUEUE", "vehicle-lookup"),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvFloat("RATE_LIMIT_RPS", 20),
			Burst: getEnvInt("RATE_LIMIT_BURST", 40),
		},
		APIPort:        getEnv("API_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SupportContact: getEnv("SUPPORT_CONTACT", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
