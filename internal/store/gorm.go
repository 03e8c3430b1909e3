package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fridgy/backend/internal/model"
)

// documentRow is the single-row table holding the serialized document. The
// relational backends keep the whole-document model: one payload, replaced on
// every save.
type documentRow struct {
	ID        uint   `gorm:"primaryKey"`
	Payload   []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (documentRow) TableName() string { return "documents" }

// GormStore persists the document as one row through a gorm dialector.
type GormStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (creating if needed) a SQLite-backed repository.
func NewSQLiteStore(path string) (*GormStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}
	return newGormStore(db)
}

// NewPostgresStore opens a Postgres-backed repository.
func NewPostgresStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return newGormStore(db)
}

func newGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate document table: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load(ctx context.Context) (*model.Document, error) {
	var row documentRow
	err := s.db.WithContext(ctx).First(&row, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.reset(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	doc, err := decodeDocument(row.Payload)
	if err != nil {
		log.Printf("discarding corrupt document row: %v", err)
		return s.reset(ctx)
	}

	if doc.Normalize() {
		if err := s.Save(ctx, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (s *GormStore) Save(ctx context.Context, doc *model.Document) error {
	payload, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	row := documentRow{ID: 1, Payload: payload}
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

func (s *GormStore) reset(ctx context.Context) (*model.Document, error) {
	doc := model.NewDocument()
	if err := s.Save(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
