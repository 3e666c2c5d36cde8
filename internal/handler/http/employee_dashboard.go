package http

import (
	"net/http"

	"github.com/shiftly-hq/attendance-backend-go/internal/domain/employee_dashboard"
	"github.com/shiftly-hq/attendance-backend-go/internal/handler/http/middleware"
	"github.com/shiftly-hq/attendance-backend-go/internal/handler/http/response"
)

type EmployeeDashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type employeeDashboardHandlerImpl struct {
	dashboardService employee_dashboard.EmployeeDashboardService
}

func NewEmployeeDashboardHandler(dashboardService employee_dashboard.EmployeeDashboardService) EmployeeDashboardHandler {
	return &employeeDashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetDashboard implements EmployeeDashboardHandler.
func (h *employeeDashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CallerID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	result, err := h.dashboardService.GetDashboard(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
