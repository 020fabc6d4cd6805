package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"roomBooker/internal/config"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
)

// Storage keeps the whole document as one string value under a single key.
type Storage struct {
	client *redis.Client
	key    string
}

func New(ctx context.Context, cfg *config.Redis) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Storage{client: client, key: cfg.Key}, nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}

func (s *Storage) Load(ctx context.Context) (*models.Document, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		doc := models.NewDocument()
		if err = s.Save(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	return storage.Decode(data)
}

func (s *Storage) Save(ctx context.Context, doc *models.Document) error {
	data, err := storage.Encode(doc)
	if err != nil {
		return err
	}

	if err = s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	return nil
}
