package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"roomBooker/internal/config"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
)

const documentID = 1

// Storage keeps the whole document as a single JSONB row.
type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return newStorage(db)
}

// newStorage takes ownership of db and closes it if the schema cannot be prepared.
func newStorage(db *sql.DB) (*Storage, error) {
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	query := `
		CREATE TABLE IF NOT EXISTS documents (
			id   SMALLINT PRIMARY KEY,
			body JSONB NOT NULL
		)`

	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) Load(ctx context.Context) (*models.Document, error) {
	query := `
		SELECT body
		FROM documents
		WHERE id = $1`

	var body []byte
	err := s.DB.QueryRowContext(ctx, query, documentID).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			doc := models.NewDocument()
			if err = s.Save(ctx, doc); err != nil {
				return nil, err
			}
			return doc, nil
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	return storage.Decode(body)
}

func (s *Storage) Save(ctx context.Context, doc *models.Document) error {
	body, err := storage.Encode(doc)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO documents (id, body)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET body = EXCLUDED.body`

	if _, err = s.DB.ExecContext(ctx, query, documentID, string(body)); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	return nil
}
