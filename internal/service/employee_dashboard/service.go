package employee_dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftly-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftly-hq/attendance-backend-go/internal/domain/employee_dashboard"
)

const recentRecordCount = 7

type EmployeeDashboardServiceImpl struct {
	attendance.AttendanceRepository
	attendanceService attendance.AttendanceService

	loc *time.Location
	now func() time.Time
}

func NewEmployeeDashboardService(attendanceRepo attendance.AttendanceRepository, attendanceService attendance.AttendanceService, loc *time.Location) *EmployeeDashboardServiceImpl {
	return &EmployeeDashboardServiceImpl{
		AttendanceRepository: attendanceRepo,
		attendanceService:    attendanceService,
		loc:                  loc,
		now:                  time.Now,
	}
}

// WithClock overrides the time source. Tests use it to pin "now".
func (s *EmployeeDashboardServiceImpl) WithClock(now func() time.Time) *EmployeeDashboardServiceImpl {
	s.now = now
	return s
}

// GetDashboard implements employee_dashboard.EmployeeDashboardService.
func (s *EmployeeDashboardServiceImpl) GetDashboard(ctx context.Context, userID string) (*employee_dashboard.DashboardResponse, error) {
	today := attendance.DateOf(s.now().In(s.loc))

	todayRecord, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's record: %w", err)
	}

	monthStats, err := s.attendanceService.GetMySummary(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByUser(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list recent records: %w", err)
	}
	if len(records) > recentRecordCount {
		records = records[:recentRecordCount]
	}

	resp := &employee_dashboard.DashboardResponse{
		MonthStats:    monthStats,
		RecentRecords: make([]attendance.RecordResponse, 0, len(records)),
	}
	if todayRecord != nil {
		r := todayRecord.ToResponse()
		resp.Today = &r
	}
	for _, rec := range records {
		resp.RecentRecords = append(resp.RecentRecords, rec.ToResponse())
	}

	return resp, nil
}
