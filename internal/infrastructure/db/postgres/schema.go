package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The UNIQUE constraints here are the race-safety backstop for the services'
// check-then-insert flows: a concurrent insert that slips past the existence
// check still fails with a 23505, which the repositories map to the same
// duplicate errors.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	username      TEXT        NOT NULL,
	email         TEXT        NOT NULL,
	password_hash TEXT        NOT NULL,
	role          TEXT        NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT users_username_key UNIQUE (username),
	CONSTRAINT users_email_key    UNIQUE (email)
);

CREATE TABLE IF NOT EXISTS tax_types (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT             NOT NULL,
	description TEXT             NOT NULL,
	rate        DOUBLE PRECISION NOT NULL,
	CONSTRAINT tax_types_name_key UNIQUE (name)
);
`

// EnsureSchema creates the tables and constraints if they do not exist yet.
// Intended to run once at startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
