// Package store persists the application document as a single unit.
//
// Every backend implements the same whole-document contract: Load returns the
// complete document (healing missing or corrupt content into an empty default)
// and Save replaces whatever was stored before. Request handlers rely on this
// read-modify-write model; there is deliberately no per-record storage.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fridgy/backend/config"
	"github.com/fridgy/backend/internal/model"
)

// Repository loads and saves the whole document.
type Repository interface {
	Load(ctx context.Context) (*model.Document, error)
	Save(ctx context.Context, doc *model.Document) error
}

// Open builds the repository selected by the configuration.
func Open(ctx context.Context, cfg *config.Config) (Repository, error) {
	switch cfg.StoreBackend {
	case config.StoreFile:
		return NewFileStore(cfg.DataFile), nil
	case config.StoreSQLite:
		return NewSQLiteStore(cfg.SQLitePath)
	case config.StorePostgres:
		return NewPostgresStore(cfg.PostgresDSN)
	case config.StoreRedis:
		return NewRedisStore(cfg)
	case config.StoreS3:
		return NewS3Store(ctx, cfg.S3Bucket, cfg.S3Key, cfg.AWSRegion)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}
}

func encodeDocument(doc *model.Document) ([]byte, error) {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return payload, nil
}

func decodeDocument(payload []byte) (*model.Document, error) {
	var doc model.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &doc, nil
}
