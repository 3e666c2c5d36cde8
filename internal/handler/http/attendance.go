package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftly-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftly-hq/attendance-backend-go/internal/handler/http/middleware"
	"github.com/shiftly-hq/attendance-backend-go/internal/handler/http/response"
	"github.com/shiftly-hq/attendance-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	GetMySummary(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetEmployeeAttendance(w http.ResponseWriter, r *http.Request)
	GetOrgSummary(w http.ResponseWriter, r *http.Request)
	GetDailyStatus(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CallerID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CallerID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CallerID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	result, err := h.attendanceService.GetMyAttendance(r.Context(), userID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMySummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.CallerID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	result, err := h.attendanceService.GetMySummary(r.Context(), userID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetEmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.attendanceService.GetEmployeeAttendance(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetOrgSummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetOrgSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetOrgSummary(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDailyStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetDailyStatus(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetDailyStatus(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// parseFilter reads the shared list/export query parameters.
func parseFilter(r *http.Request) (attendance.Filter, error) {
	q := r.URL.Query()

	filter := attendance.Filter{
		UserID: q.Get("user_id"),
	}

	var errs validator.ValidationErrors
	if v := q.Get("status"); v != "" {
		if !validator.IsInSlice(v, []string{"present", "late", "half-day"}) {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be present, late or half-day"})
		} else {
			filter.Status = attendance.Status(v)
		}
	}
	if v := q.Get("date"); v != "" {
		d, ok := validator.IsValidDate(v)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		} else {
			filter.Date = &d
		}
	}
	if v := q.Get("date_from"); v != "" {
		d, ok := validator.IsValidDate(v)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "date_from", Message: "date must be in YYYY-MM-DD format"})
		} else {
			filter.DateFrom = &d
		}
	}
	if v := q.Get("date_to"); v != "" {
		d, ok := validator.IsValidDate(v)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "date_to", Message: "date must be in YYYY-MM-DD format"})
		} else {
			filter.DateTo = &d
		}
	}

	if len(errs) > 0 {
		return attendance.Filter{}, errs
	}
	return filter, nil
}
