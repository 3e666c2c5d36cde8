package employee_dashboard

import "context"

// EmployeeDashboardService assembles the per-employee dashboard.
type EmployeeDashboardService interface {
	GetDashboard(ctx context.Context, userID string) (*DashboardResponse, error)
}
