package dashboard

import "context"

// DashboardService assembles the manager dashboard.
type DashboardService interface {
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
