package db

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		price       NUMERIC(12, 2) NOT NULL DEFAULT 0,
		category    TEXT NOT NULL,
		is_active   BOOLEAN NOT NULL DEFAULT true,
		images      JSONB NOT NULL DEFAULT '[]'::jsonb,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS basket (
		id             UUID PRIMARY KEY,
		user_id        TEXT NOT NULL,
		product_id     TEXT NOT NULL REFERENCES products (id),
		quantity       INTEGER NOT NULL CHECK (quantity BETWEEN 1 AND 9999),
		price          NUMERIC(12, 2) NOT NULL,
		configuration  JSONB,
		config_hash    TEXT NOT NULL DEFAULT '',
		category       TEXT,
		name           TEXT NOT NULL,
		image          TEXT,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, product_id, config_hash)
	)`,
	`CREATE INDEX IF NOT EXISTS basket_user_created_idx ON basket (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS saved_configurations (
		id          UUID PRIMARY KEY,
		user_id     TEXT NOT NULL,
		category    TEXT NOT NULL,
		config      JSONB NOT NULL,
		price       NUMERIC(12, 2) NOT NULL,
		name        TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS saved_configurations_user_idx ON saved_configurations (user_id, created_at DESC)`,
}

// EnsureSchema creates the tables used by the service when they do not exist yet
func EnsureSchema(ctx context.Context, conn *sql.DB) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema: %w", err)
	}
	zap.S().Infof("✅ EnsureSchema: %d statements applied", len(schema))
	return nil
}
