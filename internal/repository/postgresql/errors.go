package postgresql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation, optionally for one named constraint. Duplicate-key errors from
// the database are the authoritative conflict signal for double check-ins and
// duplicate registrations.
func uniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
