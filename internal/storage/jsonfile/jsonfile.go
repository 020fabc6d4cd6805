package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"roomBooker/internal/models"
	"roomBooker/internal/storage"
)

// Storage keeps the whole document in one JSON file. Every Load reads the file again
// and every Save rewrites it in place; a crash mid-write can leave it truncated.
type Storage struct {
	path string
}

func New(path string) *Storage {
	return &Storage{path: path}
}

// Load reads the document, creating the file with an empty document when it is absent.
func (s *Storage) Load(ctx context.Context) (*models.Document, error) {
	const op = "storage.jsonfile.Load"

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		doc := models.NewDocument()
		if err = s.Save(ctx, doc); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read %s: %w", op, s.path, err)
	}

	doc, err := storage.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc, nil
}

func (s *Storage) Save(_ context.Context, doc *models.Document) error {
	const op = "storage.jsonfile.Save"

	data, err := storage.Encode(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%s: failed to write %s: %w", op, s.path, err)
	}

	return nil
}
