package report

import (
	"context"

	"github.com/shiftly-hq/attendance-backend-go/internal/domain/attendance"
)

// ReportService produces downloadable exports of attendance data.
type ReportService interface {
	// ExportAttendanceCSV renders records matching the filter as CSV, one
	// line per record joined with employee identity.
	ExportAttendanceCSV(ctx context.Context, filter attendance.Filter) ([]byte, error)
}
