package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Store backends selectable via STORE_BACKEND.
const (
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreS3       = "s3"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// CORS configuration; "*" allows any origin.
	AllowedOrigins []string

	// Document store selection
	StoreBackend string

	// File backend
	DataFile string

	// SQLite backend
	SQLitePath string

	// Postgres backend
	PostgresDSN string

	// Redis backend
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisURL      string
	RedisKey      string

	// S3 backend
	S3Bucket  string
	S3Key     string
	AWSRegion string
}

// LoadConfig creates a Config from environment variables with development
// defaults, then validates it.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerHost:     getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		StoreBackend:   getEnv("STORE_BACKEND", StoreFile),
		DataFile:       getEnv("DATA_FILE", "data/food_data.json"),
		SQLitePath:     getEnv("SQLITE_PATH", "data/fridgy.db"),
		PostgresDSN:    os.Getenv("POSTGRES_DSN"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisURL:       os.Getenv("REDIS_URL"),
		RedisKey:       getEnv("REDIS_KEY", "fridgy:document"),
		S3Bucket:       os.Getenv("S3_BUCKET_NAME"),
		S3Key:          getEnv("S3_OBJECT_KEY", "food_data.json"),
		AWSRegion:      os.Getenv("AWS_REGION"),
	}

	if raw := os.Getenv("REDIS_DB"); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", raw, err)
		}
		cfg.RedisDB = db
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
