package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	birth_date DATE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS user_auth (
	user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
	hashed_password TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS tweets (
	id UUID PRIMARY KEY,
	content TEXT NOT NULL,
	created_by JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ
);
`

// CreateSchema bootstraps the tables on startup. The author snapshot on
// tweets is a JSONB column so the embed-by-value semantics of the file store
// carry over unchanged.
func CreateSchema(ctx context.Context, conn *pgxpool.Pool) error {
	_, err := conn.Exec(ctx, schema)
	return err
}
