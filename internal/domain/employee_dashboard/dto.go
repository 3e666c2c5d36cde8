package employee_dashboard

import "github.com/shiftly-hq/attendance-backend-go/internal/domain/attendance"

// DashboardResponse is the employee's own dashboard: today's record (nil
// before check-in), the current-month rollup, and the last seven records.
type DashboardResponse struct {
	Today         *attendance.RecordResponse  `json:"today"`
	MonthStats    attendance.MonthlySummary   `json:"month_stats"`
	RecentRecords []attendance.RecordResponse `json:"recent_records"`
}
