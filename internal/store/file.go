package store

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/fridgy/backend/internal/model"
)

// FileStore keeps the document in a single JSON file. The path is injected at
// construction; there is no global override.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed repository at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the document from disk. A missing file yields a fresh empty
// document that is persisted immediately; corrupt content is discarded and
// replaced the same way, so Load never fails the caller on bad content.
func (s *FileStore) Load(ctx context.Context) (*model.Document, error) {
	payload, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return s.reset(ctx)
	}
	if err != nil {
		return nil, err
	}

	doc, err := decodeDocument(payload)
	if err != nil {
		log.Printf("discarding corrupt data file %s: %v", s.path, err)
		return s.reset(ctx)
	}

	if doc.Normalize() {
		if err := s.Save(ctx, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Save writes the document whole, creating parent directories as needed. The
// write goes through a temp file and rename so readers never observe a
// partial document.
func (s *FileStore) Save(ctx context.Context, doc *model.Document) error {
	payload, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".fridgy-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func (s *FileStore) reset(ctx context.Context) (*model.Document, error) {
	doc := model.NewDocument()
	if err := s.Save(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
