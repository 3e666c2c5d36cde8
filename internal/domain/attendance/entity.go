package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"

	// StatusAbsent is never written to storage. It only appears in computed
	// views, inferred as the complement of the roster against recorded days.
	StatusAbsent Status = "absent"
)

// Record is one user's attendance for one calendar day. (UserID, Date) is the
// natural key; the storage layer enforces it.
type Record struct {
	ID           string
	UserID       string
	Date         time.Time // calendar date in the org timezone, zero time-of-day
	CheckInTime  time.Time
	CheckOutTime *time.Time
	Status       Status
	TotalHours   *float64 // set at check-out, hours rounded to 1 decimal
	CreatedAt    time.Time

	// joined display identity, populated by list queries
	EmployeeID   *string
	EmployeeName *string
	Department   *string
}

// RecordPatch lists the only fields a check-out may change. Keeping the patch
// closed keeps the record state machine closed: no transition can touch
// identity, date or check-in data.
type RecordPatch struct {
	CheckOutTime *time.Time
	TotalHours   *float64
	Status       *Status
}

// Filter narrows list queries; all set fields are combined with AND.
type Filter struct {
	UserID   string
	Status   Status
	Date     *time.Time
	DateFrom *time.Time
	DateTo   *time.Time
}
