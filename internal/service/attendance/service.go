package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shiftly-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftly-hq/attendance-backend-go/internal/domain/user"
	"github.com/shiftly-hq/attendance-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository

	loc *time.Location
	now func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, userRepo user.UserRepository, loc *time.Location) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		UserRepository:       userRepo,
		loc:                  loc,
		now:                  time.Now,
	}
}

// WithClock overrides the time source. Tests use it to pin "now".
func (s *AttendanceServiceImpl) WithClock(now func() time.Time) *AttendanceServiceImpl {
	s.now = now
	return s
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, userID string) (attendance.RecordResponse, error) {
	if _, err := s.UserRepository.GetByID(ctx, userID); err != nil {
		return attendance.RecordResponse{}, err
	}

	nowLocal := s.now().In(s.loc)
	today := attendance.DateOf(nowLocal)

	record := attendance.Record{
		UserID:      userID,
		Date:        today,
		CheckInTime: nowLocal,
		Status:      attendance.ClassifyCheckIn(nowLocal),
	}

	// No existence pre-read: the store's natural-key constraint is the
	// authoritative double check-in signal, so two concurrent check-ins
	// cannot both succeed.
	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateRecord) {
			return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created.ToResponse(), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, userID string) (attendance.RecordResponse, error) {
	nowLocal := s.now().In(s.loc)
	today := attendance.DateOf(nowLocal)

	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}
	if record == nil {
		return attendance.RecordResponse{}, attendance.ErrNoCheckInFound
	}
	if record.CheckOutTime != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	totalHours := attendance.RoundHours(nowLocal.Sub(record.CheckInTime).Hours())

	// Under four hours the day becomes a half-day no matter what the
	// check-in earned; otherwise the check-in status stands.
	status := record.Status
	if totalHours < attendance.HalfDayThresholdHours {
		status = attendance.StatusHalfDay
	}

	updated, err := s.AttendanceRepository.Update(ctx, record.ID, attendance.RecordPatch{
		CheckOutTime: &nowLocal,
		TotalHours:   &totalHours,
		Status:       &status,
	})
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return updated.ToResponse(), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, userID string, month string) ([]attendance.RecordResponse, error) {
	if month != "" {
		if _, ok := validator.IsValidMonth(month); !ok {
			return nil, validator.ValidationErrors{{Field: "month", Message: "month must be in YYYY-MM format"}}
		}
	}

	records, err := s.AttendanceRepository.ListByUser(ctx, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return toResponses(records), nil
}

// GetMySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMySummary(ctx context.Context, userID string, month string) (attendance.MonthlySummary, error) {
	monthStr, err := s.resolveMonth(month)
	if err != nil {
		return attendance.MonthlySummary{}, err
	}

	return s.summarize(ctx, userID, monthStr)
}

// summarize rolls one user's records for one month up against the working-day
// calendar. Absence is inferred, never read from storage.
func (s *AttendanceServiceImpl) summarize(ctx context.Context, userID string, month string) (attendance.MonthlySummary, error) {
	records, err := s.AttendanceRepository.ListByUser(ctx, userID, month)
	if err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	summary := attendance.MonthlySummary{Month: month}
	var totalHours float64
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusLate:
			summary.Late++
		case attendance.StatusHalfDay:
			summary.HalfDay++
		}
		if rec.TotalHours != nil {
			totalHours += *rec.TotalHours
		}
	}

	parsed, _ := time.Parse("2006-01", month)
	today := attendance.DateOf(s.now().In(s.loc))
	summary.WorkingDays = attendance.CountableWorkingDays(parsed.Year(), parsed.Month(), today)

	absent := summary.WorkingDays - summary.Present - summary.Late - summary.HalfDay
	if absent < 0 {
		absent = 0
	}
	summary.Absent = absent
	summary.TotalHours = attendance.RoundHours(totalHours)

	return summary, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.Filter) ([]attendance.RecordResponse, error) {
	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return toResponses(records), nil
}

// GetEmployeeAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, employeeID string, month string) ([]attendance.RecordResponse, error) {
	u, err := s.UserRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return s.GetMyAttendance(ctx, u.ID, month)
}

// GetOrgSummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetOrgSummary(ctx context.Context, month string) (attendance.OrgSummary, error) {
	monthStr, err := s.resolveMonth(month)
	if err != nil {
		return attendance.OrgSummary{}, err
	}

	roster, err := s.UserRepository.ListEmployees(ctx)
	if err != nil {
		return attendance.OrgSummary{}, fmt.Errorf("failed to list employees: %w", err)
	}

	org := attendance.OrgSummary{Month: monthStr, Employees: len(roster)}
	parsed, _ := time.Parse("2006-01", monthStr)
	today := attendance.DateOf(s.now().In(s.loc))
	org.WorkingDays = attendance.CountableWorkingDays(parsed.Year(), parsed.Month(), today)

	var totalHours float64
	for _, emp := range roster {
		summary, err := s.summarize(ctx, emp.ID, monthStr)
		if err != nil {
			return attendance.OrgSummary{}, err
		}
		org.Present += summary.Present
		org.Absent += summary.Absent
		org.Late += summary.Late
		org.HalfDay += summary.HalfDay
		totalHours += summary.TotalHours
	}
	org.TotalHours = attendance.RoundHours(totalHours)

	return org, nil
}

// GetDailyStatus implements attendance.AttendanceService. Roster members
// without a record for the date come back as absent; that set difference is
// the only place absence exists.
func (s *AttendanceServiceImpl) GetDailyStatus(ctx context.Context, date string) ([]attendance.DailyEmployeeStatus, error) {
	day := attendance.DateOf(s.now().In(s.loc))
	if date != "" {
		parsed, ok := validator.IsValidDate(date)
		if !ok {
			return nil, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
		}
		day = parsed
	}

	roster, err := s.UserRepository.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for date: %w", err)
	}

	recordsByUser := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		recordsByUser[rec.UserID] = rec
	}

	statuses := make([]attendance.DailyEmployeeStatus, 0, len(roster))
	for _, emp := range roster {
		row := attendance.DailyEmployeeStatus{
			UserID:     emp.ID,
			EmployeeID: emp.EmployeeID,
			Name:       emp.Name,
			Department: emp.Department,
			Status:     string(attendance.StatusAbsent),
		}
		if rec, ok := recordsByUser[emp.ID]; ok {
			resp := rec.ToResponse()
			row.Status = resp.Status
			row.CheckInTime = &resp.CheckInTime
			row.CheckOutTime = resp.CheckOutTime
			row.TotalHours = resp.TotalHours
		}
		statuses = append(statuses, row)
	}

	return statuses, nil
}

// resolveMonth validates a "YYYY-MM" month, defaulting to the current month.
func (s *AttendanceServiceImpl) resolveMonth(month string) (string, error) {
	if month == "" {
		return s.now().In(s.loc).Format("2006-01"), nil
	}
	if _, ok := validator.IsValidMonth(month); !ok {
		return "", validator.ValidationErrors{{Field: "month", Message: "month must be in YYYY-MM format"}}
	}
	return month, nil
}

func toResponses(records []attendance.Record) []attendance.RecordResponse {
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, rec.ToResponse())
	}
	return responses
}
