// Package service implements accounts and room bookings over a whole-document store.
//
// Every operation loads the full document, works on it in memory and, when it changes
// anything, writes the full document back once. There is no locking between requests:
// two concurrent creates for one slot can both pass the availability check, and the
// later write wins.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"roomBooker/internal/models"
)

type Store interface {
	Load(ctx context.Context) (*models.Document, error)
	Save(ctx context.Context, doc *models.Document) error
}

type Catalog interface {
	CapacityFor(roomName string) (models.Capacity, bool)
}

type Service struct {
	log     *slog.Logger
	store   Store
	catalog Catalog
}

func New(log *slog.Logger, store Store, catalog Catalog) *Service {
	return &Service{
		log:     log,
		store:   store,
		catalog: catalog,
	}
}

func (s *Service) load(ctx context.Context) (*models.Document, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	doc.Normalize()

	return doc, nil
}

func (s *Service) save(ctx context.Context, doc *models.Document) error {
	if err := s.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}

	return nil
}
