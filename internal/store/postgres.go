package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"jyotish/api/internal/content"
)

// PostgresStore keeps the content document as one jsonb row. The
// table is created on open; there is no migration system because the
// schema is a single upsert target.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens the database, verifies connectivity, and
// ensures the content table exists.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetMaxIdleConns(5)
	db.SetMaxOpenConns(10)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS site_content (
			key        text PRIMARY KEY,
			document   jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure site_content table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context) (content.Document, bool, error) {
	const query = `SELECT document FROM site_content WHERE key = $1`
	var raw []byte
	err := s.db.QueryRowContext(ctx, query, contentKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return content.Document{}, false, nil
	}
	if err != nil {
		return content.Document{}, false, fmt.Errorf("get content: %w", err)
	}

	var doc content.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return content.Document{}, false, nil
	}
	return doc, true, nil
}

func (s *PostgresStore) Put(ctx context.Context, doc content.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}
	const upsert = `
		INSERT INTO site_content (key, document, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET document = EXCLUDED.document, updated_at = now()
	`
	if _, err := s.db.ExecContext(ctx, upsert, contentKey, raw); err != nil {
		return fmt.Errorf("put content: %w", err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
