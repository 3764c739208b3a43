package db

import (
	"context"
	"fmt"
)

// schema holds the DDL for the tables this package manages. Statements are
// idempotent so EnsureSchema is safe to run at every startup.
const schema = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	phone         TEXT,
	password_hash TEXT,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS analyses (
	id                 UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id            UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	role               TEXT NOT NULL,
	total_score        INT NOT NULL,
	skill_score        INT NOT NULL,
	keyword_score      INT NOT NULL,
	completeness_score INT NOT NULL,
	skills_added       INT NOT NULL DEFAULT 0,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_analyses_user_created
	ON analyses (user_id, created_at DESC);
`

// EnsureSchema creates the users and analyses tables if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
