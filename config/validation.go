package config

import (
	"fmt"
	"strconv"
)

// ValidateConfig checks that the configuration is usable before the server
// starts, so misconfiguration fails fast instead of at first request.
func ValidateConfig(cfg *Config) error {
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("server port must be numeric, got %q", cfg.ServerPort)
	}

	switch cfg.StoreBackend {
	case StoreFile:
		if cfg.DataFile == "" {
			return fmt.Errorf("DATA_FILE is required for the file store")
		}
	case StoreSQLite:
		if cfg.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite store")
		}
	case StorePostgres:
		if cfg.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required for the postgres store")
		}
	case StoreRedis:
		if cfg.RedisAddr == "" && cfg.RedisURL == "" {
			return fmt.Errorf("REDIS_ADDR or REDIS_URL is required for the redis store")
		}
	case StoreS3:
		if cfg.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET_NAME is required for the s3 store")
		}
	default:
		return fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}

	return nil
}
