package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create persists a new record. The storage layer enforces the
	// (UserID, Date) natural key and returns ErrDuplicateRecord on
	// collision; that signal, not a prior read, is what makes concurrent
	// check-ins safe.
	Create(ctx context.Context, record Record) (Record, error)

	// GetByUserAndDate returns the record for the user on the given
	// calendar date, or nil when none exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Record, error)

	// Update merges the patch into the record and returns the updated
	// record, ErrRecordNotFound if the id is unknown.
	Update(ctx context.Context, id string, patch RecordPatch) (Record, error)

	// ListByUser returns the user's records, newest date first. month is
	// "YYYY-MM"; empty means all months.
	ListByUser(ctx context.Context, userID string, month string) ([]Record, error)

	// List returns records matching the filter, newest date first, with
	// employee identity joined in.
	List(ctx context.Context, filter Filter) ([]Record, error)

	// ListByDate returns all records for one calendar date.
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)
}
