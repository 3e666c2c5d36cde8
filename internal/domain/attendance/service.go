package attendance

import "context"

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// CheckIn creates today's record for the user, classifying present or
	// late from the check-in time.
	CheckIn(ctx context.Context, userID string) (RecordResponse, error)

	// CheckOut completes today's record: sets check-out time and total
	// hours, downgrading to half-day under the threshold.
	CheckOut(ctx context.Context, userID string) (RecordResponse, error)

	// GetMyAttendance returns the user's records, optionally limited to a
	// "YYYY-MM" month, newest first.
	GetMyAttendance(ctx context.Context, userID string, month string) ([]RecordResponse, error)

	// GetMySummary returns the user's monthly rollup; empty month means the
	// current month.
	GetMySummary(ctx context.Context, userID string, month string) (MonthlySummary, error)

	// ListAttendance returns records matching the filter with employee
	// identity joined in (manager view).
	ListAttendance(ctx context.Context, filter Filter) ([]RecordResponse, error)

	// GetEmployeeAttendance returns one employee's records looked up by
	// employee ID (manager view).
	GetEmployeeAttendance(ctx context.Context, employeeID string, month string) ([]RecordResponse, error)

	// GetOrgSummary aggregates monthly summaries across the roster.
	GetOrgSummary(ctx context.Context, month string) (OrgSummary, error)

	// GetDailyStatus returns per-employee status for a date; roster members
	// without a record appear as absent.
	GetDailyStatus(ctx context.Context, date string) ([]DailyEmployeeStatus, error)
}
