package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shiftly-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftly-hq/attendance-backend-go/internal/domain/dashboard"
	"github.com/shiftly-hq/attendance-backend-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository

	loc *time.Location
	now func() time.Time
}

func NewDashboardService(attendanceRepo attendance.AttendanceRepository, userRepo user.UserRepository, loc *time.Location) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		AttendanceRepository: attendanceRepo,
		UserRepository:       userRepo,
		loc:                  loc,
		now:                  time.Now,
	}
}

// WithClock overrides the time source. Tests use it to pin "now".
func (s *DashboardServiceImpl) WithClock(now func() time.Time) *DashboardServiceImpl {
	s.now = now
	return s
}

// GetDashboard implements dashboard.DashboardService. The per-day and
// per-month reads are independent, so they fan out in parallel.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	today := attendance.DateOf(s.now().In(s.loc))

	roster, err := s.UserRepository.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	var (
		todayRecords []attendance.Record
		trendDays    = make([][]attendance.Record, 7)
		monthRecords []attendance.Record
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		todayRecords, err = s.AttendanceRepository.ListByDate(gctx, today)
		return err
	})

	for i := 0; i < 7; i++ {
		i := i
		day := today.AddDate(0, 0, i-6)
		g.Go(func() error {
			records, err := s.AttendanceRepository.ListByDate(gctx, day)
			if err != nil {
				return err
			}
			trendDays[i] = records
			return nil
		})
	}

	g.Go(func() error {
		monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, s.loc)
		from, to := monthStart, today
		var err error
		monthRecords, err = s.AttendanceRepository.List(gctx, attendance.Filter{
			DateFrom: &from,
			DateTo:   &to,
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}

	// membership set: records from off-roster users (e.g. managers' own
	// check-ins) never count toward roster-sized views
	onRoster := make(map[string]bool, len(roster))
	for _, emp := range roster {
		onRoster[emp.ID] = true
	}

	resp := &dashboard.DashboardResponse{
		WeeklyTrend: make([]dashboard.TrendDay, 0, 7),
	}
	resp.Today, resp.LateToday, resp.AbsentToday = s.todayView(today, roster, onRoster, todayRecords)

	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, i-6)
		resp.WeeklyTrend = append(resp.WeeklyTrend, trendDay(day, onRoster, trendDays[i]))
	}

	resp.Departments = departmentStats(roster, monthRecords, attendance.WorkingDaysToDate(today))

	return resp, nil
}

func (s *DashboardServiceImpl) todayView(today time.Time, roster []user.User, onRoster map[string]bool, records []attendance.Record) (dashboard.TodayCounts, []dashboard.EmployeeRow, []dashboard.EmployeeRow) {
	counts := dashboard.TodayCounts{
		Date:  today.Format("2006-01-02"),
		Total: len(roster),
	}

	recordsByUser := make(map[string]attendance.Record, len(records))
	lateRows := []dashboard.EmployeeRow{}
	for _, rec := range records {
		if !onRoster[rec.UserID] {
			continue // not on the roster (e.g. a manager's own record)
		}
		recordsByUser[rec.UserID] = rec
		switch rec.Status {
		case attendance.StatusPresent:
			counts.Present++
		case attendance.StatusLate:
			counts.Late++
		case attendance.StatusHalfDay:
			counts.HalfDay++
		}
	}

	absentRows := []dashboard.EmployeeRow{}
	for _, emp := range roster {
		rec, ok := recordsByUser[emp.ID]
		if !ok {
			absentRows = append(absentRows, dashboard.EmployeeRow{
				UserID:     emp.ID,
				EmployeeID: emp.EmployeeID,
				Name:       emp.Name,
				Department: emp.Department,
			})
			continue
		}
		if rec.Status == attendance.StatusLate {
			checkIn := rec.CheckInTime.Format("2006-01-02 15:04:05")
			lateRows = append(lateRows, dashboard.EmployeeRow{
				UserID:      emp.ID,
				EmployeeID:  emp.EmployeeID,
				Name:        emp.Name,
				Department:  emp.Department,
				CheckInTime: &checkIn,
			})
		}
	}

	counts.Absent = len(absentRows)

	return counts, lateRows, absentRows
}

// trendDay buckets one day's roster records. Half-day counts under present so
// present + late + absent equals the roster size.
func trendDay(day time.Time, onRoster map[string]bool, records []attendance.Record) dashboard.TrendDay {
	td := dashboard.TrendDay{Date: day.Format("2006-01-02")}
	attended := 0
	for _, rec := range records {
		if !onRoster[rec.UserID] {
			continue
		}
		attended++
		if rec.Status == attendance.StatusLate {
			td.Late++
		} else {
			td.Present++
		}
	}
	td.Absent = len(onRoster) - attended
	if td.Absent < 0 {
		td.Absent = 0
	}
	return td
}

// departmentStats computes the current-month attendance percentage per
// department: present-or-late records over headcount x working days to date.
func departmentStats(roster []user.User, monthRecords []attendance.Record, workingDays int) []dashboard.DepartmentStats {
	headcount := make(map[string]int)
	departmentOf := make(map[string]string, len(roster))
	for _, emp := range roster {
		headcount[emp.Department]++
		departmentOf[emp.ID] = emp.Department
	}

	attended := make(map[string]int)
	for _, rec := range monthRecords {
		dept, ok := departmentOf[rec.UserID]
		if !ok {
			continue // not on the roster (e.g. a manager's own record)
		}
		if rec.Status == attendance.StatusPresent || rec.Status == attendance.StatusLate {
			attended[dept]++
		}
	}

	stats := make([]dashboard.DepartmentStats, 0, len(headcount))
	for dept, count := range headcount {
		ds := dashboard.DepartmentStats{Department: dept, Headcount: count}
		if count > 0 && workingDays > 0 {
			percent := float64(attended[dept]) / float64(count*workingDays) * 100
			if percent > 100 {
				percent = 100
			}
			ds.AttendancePercent = attendance.RoundHours(percent)
		}
		stats = append(stats, ds)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Department < stats[j].Department
	})

	return stats
}
