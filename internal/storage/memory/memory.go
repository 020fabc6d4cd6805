package memory

import (
	"context"
	"fmt"
	"sync"

	"roomBooker/internal/models"
	"roomBooker/internal/storage"
)

// Storage holds the encoded document in memory. Load hands out a fresh copy each
// time, so callers see the same reload-per-request behaviour as the file store.
type Storage struct {
	mu   sync.Mutex
	data []byte
}

func New() *Storage {
	return &Storage{}
}

func (s *Storage) Load(_ context.Context) (*models.Document, error) {
	const op = "storage.memory.Load"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		data, err := storage.Encode(models.NewDocument())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		s.data = data
	}

	doc, err := storage.Decode(s.data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc, nil
}

func (s *Storage) Save(_ context.Context, doc *models.Document) error {
	const op = "storage.memory.Save"

	data, err := storage.Encode(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()

	return nil
}
