package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"brims/pkg/e"
)

const schema = `
CREATE TABLE IF NOT EXISTS incidents (
	id                   uuid PRIMARY KEY,
	title                text NOT NULL,
	description          text NOT NULL DEFAULT '',
	location             text NOT NULL,
	barangay             text NOT NULL DEFAULT '',
	incident_type        text NOT NULL,
	severity             text NOT NULL,
	status               text NOT NULL DEFAULT 'Reported',
	incident_date        text NOT NULL,
	affected_families    integer NOT NULL DEFAULT 0 CHECK (affected_families >= 0),
	affected_individuals integer NOT NULL DEFAULT 0 CHECK (affected_individuals >= 0),
	dead                 integer NOT NULL DEFAULT 0 CHECK (dead >= 0),
	injured              integer NOT NULL DEFAULT 0 CHECK (injured >= 0),
	missing              integer NOT NULL DEFAULT 0 CHECK (missing >= 0),
	admin_hold           boolean NOT NULL DEFAULT false,
	created_at           timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS incidents_barangay_idx ON incidents (barangay);

CREATE TABLE IF NOT EXISTS incident_sub_records (
	incident_id uuid NOT NULL REFERENCES incidents (id) ON DELETE CASCADE,
	kind        text NOT NULL,
	payload     jsonb NOT NULL,
	updated_at  timestamptz NOT NULL DEFAULT now(),
	PRIMARY KEY (incident_id, kind)
);

CREATE TABLE IF NOT EXISTS notifications (
	id          uuid PRIMARY KEY,
	incident_id uuid REFERENCES incidents (id) ON DELETE SET NULL,
	message     text NOT NULL,
	read_at     timestamptz,
	created_at  timestamptz NOT NULL DEFAULT now()
);
`

// Migrate creates the console tables when they are missing.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	const op = "postgres.Migrate"

	if _, err := pool.Exec(ctx, schema); err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}
