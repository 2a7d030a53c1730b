package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements is the startup DDL. Registrations cascade when the
// referenced user or event is deleted, so the ledger never holds orphans.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'user',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date        TIMESTAMPTZ NOT NULL,
		location    TEXT NOT NULL DEFAULT '',
		image_url   TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS registrations (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		event_id      TEXT NOT NULL REFERENCES events (id) ON DELETE CASCADE,
		registered_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, event_id)
	)`,
}

// EnsureSchema creates the tables on first startup. Idempotent.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
