package database

import (
	"context"
	"fmt"
)

// schema is applied on startup so a fresh database works without a separate
// migration step. Uniqueness of (user_id, date) lives here on purpose: the
// duplicate-key error from the insert is the authoritative double check-in
// signal, not a prior existence read.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL,
	employee_id   TEXT NOT NULL,
	department    TEXT NOT NULL,
	role          TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT users_email_key UNIQUE (email),
	CONSTRAINT users_employee_id_key UNIQUE (employee_id)
);

CREATE TABLE IF NOT EXISTS attendance_records (
	id             TEXT PRIMARY KEY,
	user_id        TEXT NOT NULL REFERENCES users(id),
	date           DATE NOT NULL,
	check_in_time  TIMESTAMPTZ NOT NULL,
	check_out_time TIMESTAMPTZ,
	status         TEXT NOT NULL,
	total_hours    DOUBLE PRECISION,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT attendance_records_user_id_date_key UNIQUE (user_id, date)
);

CREATE INDEX IF NOT EXISTS attendance_records_date_idx ON attendance_records(date);
`

// Bootstrap creates the tables if they do not exist yet.
func (db *DB) Bootstrap(ctx context.Context) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	return nil
}
