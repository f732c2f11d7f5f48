package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresBackend stores each document as one row of the documents table
// (see config.RunMigrations).
type PostgresBackend struct {
	db *sql.DB
}

func NewPostgresBackend(db *sql.DB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (b *PostgresBackend) Load(ctx context.Context, name string) ([]byte, error) {
	var body []byte
	err := b.db.QueryRowContext(ctx, `
		SELECT body FROM documents WHERE name = $1
	`, name).Scan(&body)

	if err == sql.ErrNoRows {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("load document %s: %w", name, err)
	}
	return body, nil
}

func (b *PostgresBackend) Save(ctx context.Context, name string, data []byte) error {
	if data == nil {
		return errors.New("refusing to save a nil document")
	}
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO documents (name, body, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()
	`, name, data)

	if err != nil {
		return fmt.Errorf("save document %s: %w", name, err)
	}
	return nil
}
