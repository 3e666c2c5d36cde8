package dashboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shiftly-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftly-hq/attendance-backend-go/internal/domain/user"
	"github.com/shiftly-hq/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday March 12, 2025. Working days so far that month: Mar 3-7 and 10-12.
var anchor = time.Date(2025, 3, 12, 17, 0, 0, 0, time.UTC)

type fixture struct {
	svc     *DashboardServiceImpl
	users   *memory.UserRepository
	records *memory.AttendanceRepository
}

func newFixture() *fixture {
	users := memory.NewUserRepository()
	records := memory.NewAttendanceRepository(users)
	svc := NewDashboardService(records, users, time.UTC).WithClock(func() time.Time { return anchor })
	return &fixture{svc: svc, users: users, records: records}
}

func (f *fixture) addEmployee(t *testing.T, name, department string) user.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), user.User{
		Name:         name,
		Email:        fmt.Sprintf("%s@example.com", name),
		EmployeeID:   "EMP-" + name,
		Department:   department,
		Role:         user.RoleEmployee,
		PasswordHash: "x",
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) addManager(t *testing.T, name string) user.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), user.User{
		Name:         name,
		Email:        fmt.Sprintf("%s@example.com", name),
		EmployeeID:   "MGR-" + name,
		Department:   "Management",
		Role:         user.RoleManager,
		PasswordHash: "x",
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) addRecord(t *testing.T, userID string, day time.Time, status attendance.Status) {
	t.Helper()
	_, err := f.records.Create(context.Background(), attendance.Record{
		UserID:      userID,
		Date:        time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
		CheckInTime: time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, time.UTC),
		Status:      status,
	})
	require.NoError(t, err)
}

func TestGetDashboard_TodayCounts(t *testing.T) {
	f := newFixture()
	a := f.addEmployee(t, "ana", "Engineering")
	b := f.addEmployee(t, "bo", "Engineering")
	c := f.addEmployee(t, "cy", "Sales")
	f.addEmployee(t, "dee", "Sales")

	f.addRecord(t, a.ID, anchor, attendance.StatusPresent)
	f.addRecord(t, b.ID, anchor, attendance.StatusLate)
	f.addRecord(t, c.ID, anchor, attendance.StatusHalfDay)

	resp, err := f.svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-03-12", resp.Today.Date)
	assert.Equal(t, 1, resp.Today.Present)
	assert.Equal(t, 1, resp.Today.Late)
	assert.Equal(t, 1, resp.Today.HalfDay)
	assert.Equal(t, 1, resp.Today.Absent)
	assert.Equal(t, 4, resp.Today.Total)
	assert.Equal(t, resp.Today.Total,
		resp.Today.Present+resp.Today.Late+resp.Today.HalfDay+resp.Today.Absent)

	require.Len(t, resp.LateToday, 1)
	assert.Equal(t, b.ID, resp.LateToday[0].UserID)
	require.NotNil(t, resp.LateToday[0].CheckInTime)

	require.Len(t, resp.AbsentToday, 1)
	assert.Equal(t, "dee", resp.AbsentToday[0].Name)
	assert.Nil(t, resp.AbsentToday[0].CheckInTime)
}

func TestGetDashboard_ManagerRecordExcludedFromTodayCounts(t *testing.T) {
	f := newFixture()
	a := f.addEmployee(t, "ana", "Engineering")
	mgr := f.addManager(t, "max")

	f.addRecord(t, a.ID, anchor, attendance.StatusPresent)
	f.addRecord(t, mgr.ID, anchor, attendance.StatusPresent)

	resp, err := f.svc.GetDashboard(context.Background())
	require.NoError(t, err)

	// the manager's own check-in does not count against the roster
	assert.Equal(t, 1, resp.Today.Total)
	assert.Equal(t, 1, resp.Today.Present)
	assert.Equal(t, 0, resp.Today.Absent)
	assert.Equal(t, resp.Today.Total,
		resp.Today.Present+resp.Today.Late+resp.Today.HalfDay+resp.Today.Absent)
	assert.Empty(t, resp.LateToday)
	assert.Empty(t, resp.AbsentToday)

	// same rule in the trend: today's bucket stays roster-sized
	today := resp.WeeklyTrend[6]
	assert.Equal(t, "2025-03-12", today.Date)
	assert.Equal(t, 1, today.Present)
	assert.Equal(t, 0, today.Absent)
	assert.Equal(t, 1, today.Present+today.Late+today.Absent)
}

func TestGetDashboard_WeeklyTrend(t *testing.T) {
	f := newFixture()
	a := f.addEmployee(t, "ana", "Engineering")
	b := f.addEmployee(t, "bo", "Engineering")

	yesterday := anchor.AddDate(0, 0, -1)
	f.addRecord(t, a.ID, yesterday, attendance.StatusHalfDay)
	f.addRecord(t, b.ID, yesterday, attendance.StatusLate)
	f.addRecord(t, a.ID, anchor, attendance.StatusPresent)

	resp, err := f.svc.GetDashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.WeeklyTrend, 7)

	// oldest first, ending today
	assert.Equal(t, "2025-03-06", resp.WeeklyTrend[0].Date)
	assert.Equal(t, "2025-03-12", resp.WeeklyTrend[6].Date)

	day11 := resp.WeeklyTrend[5]
	assert.Equal(t, "2025-03-11", day11.Date)
	// half-day buckets under present
	assert.Equal(t, 1, day11.Present)
	assert.Equal(t, 1, day11.Late)
	assert.Equal(t, 0, day11.Absent)

	day12 := resp.WeeklyTrend[6]
	assert.Equal(t, 1, day12.Present)
	assert.Equal(t, 1, day12.Absent)

	for _, day := range resp.WeeklyTrend {
		assert.GreaterOrEqual(t, day.Absent, 0)
		assert.Equal(t, 2, day.Present+day.Late+day.Absent)
	}
}

func TestGetDashboard_DepartmentStats(t *testing.T) {
	f := newFixture()
	a := f.addEmployee(t, "ana", "Engineering")
	b := f.addEmployee(t, "bo", "Engineering")
	f.addEmployee(t, "cy", "Sales")

	// 8 working days to date; ana attends 8, bo attends 4 of them
	for i := 0; i < 10; i++ {
		day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		if !attendance.IsWorkingDay(day) {
			continue
		}
		f.addRecord(t, a.ID, day, attendance.StatusPresent)
		if day.Day() <= 6 {
			f.addRecord(t, b.ID, day, attendance.StatusLate)
		}
	}

	resp, err := f.svc.GetDashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Departments, 2)

	// sorted by department name
	eng := resp.Departments[0]
	sales := resp.Departments[1]
	assert.Equal(t, "Engineering", eng.Department)
	assert.Equal(t, 2, eng.Headcount)
	// (8 + 4) / (2 * 8) = 75%
	assert.Equal(t, 75.0, eng.AttendancePercent)

	assert.Equal(t, "Sales", sales.Department)
	assert.Equal(t, 1, sales.Headcount)
	assert.Equal(t, 0.0, sales.AttendancePercent)

	for _, dept := range resp.Departments {
		assert.GreaterOrEqual(t, dept.AttendancePercent, 0.0)
		assert.LessOrEqual(t, dept.AttendancePercent, 100.0)
	}
}

func TestGetDashboard_EmptyRoster(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Today.Total)
	assert.Empty(t, resp.LateToday)
	assert.Empty(t, resp.AbsentToday)
	assert.Empty(t, resp.Departments)
	require.Len(t, resp.WeeklyTrend, 7)
	for _, day := range resp.WeeklyTrend {
		assert.Zero(t, day.Present+day.Late+day.Absent)
	}
}

func TestGetDashboard_PercentCappedAtHundred(t *testing.T) {
	f := newFixture()
	a := f.addEmployee(t, "ana", "Engineering")

	// weekend records on top of a full working-day streak push the raw
	// ratio over 1.0; the stat must stay capped
	for i := 0; i < 12; i++ {
		day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		f.addRecord(t, a.ID, day, attendance.StatusPresent)
	}

	resp, err := f.svc.GetDashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Departments, 1)
	assert.Equal(t, 100.0, resp.Departments[0].AttendancePercent)
}
