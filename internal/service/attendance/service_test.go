package attendance

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

// testClock is a settable time source shared with the service under test.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Set(t time.Time) { c.now = t }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestService() (*AttendanceServiceImpl, *memory.UserRepository, *testClock) {
	users := memory.NewUserRepository()
	records := memory.NewAttendanceRepository(users)
	// Wednesday March 12, 2025, 08:50 local
	clock := &testClock{now: time.Date(2025, 3, 12, 8, 50, 0, 0, time.UTC)}
	svc := NewAttendanceService(records, users, time.UTC).WithClock(clock.Now)
	return svc, users, clock
}

func createEmployee(t *testing.T, users *memory.UserRepository, name string) user.User {
	t.Helper()
	u, err := users.Create(context.Background(), user.User{
		Name:         name,
		Email:        fmt.Sprintf("%s@example.com", name),
		EmployeeID:   "EMP-" + name,
		Department:   "Engineering",
		Role:         user.RoleEmployee,
		PasswordHash: "x",
	})
	require.NoError(t, err)
	return u
}

func TestCheckIn_OnTimeThenFullDay(t *testing.T) {
	ctx := context.Background()
	svc, users, clock := newTestService()
	u := createEmployee(t, users, "ana")

	rec, err := svc.CheckIn(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "present", rec.Status)
	assert.Equal(t, "2025-03-12", rec.Date)
	assert.Nil(t, rec.CheckOutTime)
	assert.Nil(t, rec.TotalHours)

	clock.Advance(5 * time.Hour) // 13:50, 5.0h elapsed
	out, err := svc.CheckOut(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "present", out.Status)
	require.NotNil(t, out.TotalHours)
	assert.Equal(t, 5.0, *out.TotalHours)
	require.NotNil(t, out.CheckOutTime)
}

func TestCheckIn_LateThenHalfDay(t *testing.T) {
	ctx := context.Background()
	svc, users, clock := newTestService()
	u := createEmployee(t, users, "ana")

	clock.Set(time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC))
	rec, err := svc.CheckIn(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "late", rec.Status)

	clock.Advance(2 * time.Hour)
	out, err := svc.CheckOut(ctx, u.ID)
	require.NoError(t, err)
	// under four hours the half-day downgrade wins over late
	assert.Equal(t, "half-day", out.Status)
	require.NotNil(t, out.TotalHours)
	assert.Equal(t, 2.0, *out.TotalHours)
}

func TestCheckIn_CutoffBoundary(t *testing.T) {
	ctx := context.Background()
	svc, users, clock := newTestService()
	onTime := createEmployee(t, users, "ontime")
	late := createEmployee(t, users, "late")

	clock.Set(time.Date(2025, 3, 12, 9, 15, 0, 0, time.UTC))
	rec, err := svc.CheckIn(ctx, onTime.ID)
	require.NoError(t, err)
	assert.Equal(t, "present", rec.Status)

	clock.Set(time.Date(2025, 3, 12, 9, 15, 1, 0, time.UTC))
	rec, err = svc.CheckIn(ctx, late.ID)
	require.NoError(t, err)
	assert.Equal(t, "late", rec.Status)
}

func TestCheckIn_LongDayKeepsLateStatus(t *testing.T) {
	ctx := context.Background()
	svc, users, clock := newTestService()
	u := createEmployee(t, users, "ana")

	clock.Set(time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC))
	_, err := svc.CheckIn(ctx, u.ID)
	require.NoError(t, err)

	clock.Advance(8 * time.Hour)
	out, err := svc.CheckOut(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "late", out.Status)
	assert.Equal(t, 8.0, *out.TotalHours)
}

func TestCheckIn_SecondAttemptRejected(t *testing.T) {
	ctx := context.Background()
	svc, users, clock := newTestService()
	u := createEmployee(t, users, "ana")

	first, err := svc.CheckIn(ctx, u.ID)
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	_, err = svc.CheckIn(ctx, u.ID)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	// first record unchanged
	history, err := svc.GetMyAttendance(ctx, u.ID, "")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, first.ID, history[0].ID)
	assert.Equal(t, first.CheckInTime, history[0].CheckInTime)
}

func TestCheckIn_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.CheckIn(ctx, "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestCheckOut_StateMachine(t *testing.T) {
	ctx := context.Background()
	svc, users, clock := newTestService()
	u := createEmployee(t, users, "ana")

	_, err := svc.CheckOut(ctx, u.ID)
	assert.ErrorIs(t, err, attendance.ErrNoCheckInFound)

	_, err = svc.CheckIn(ctx, u.ID)
	require.NoError(t, err)

	clock.Advance(6 * time.Hour)
	_, err = svc.CheckOut(ctx, u.ID)
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, u.ID)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestGetMySummary_InvariantHolds(t *testing.T) {
	ctx := context.Background()
	svc, users, clock := newTestService()
	u := createEmployee(t, users, "ana")

	// three worked days earlier in the month: present, late, half-day
	days := []struct {
		day     int
		checkIn time.Time
		worked  time.Duration
	}{
		{10, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), 8 * time.Hour},
		{11, time.Date(2025, 3, 11, 9, 40, 0, 0, time.UTC), 7 * time.Hour},
		{12, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC), 3 * time.Hour},
	}
	for _, d := range days {
		clock.Set(d.checkIn)
		_, err := svc.CheckIn(ctx, u.ID)
		require.NoError(t, err)
		clock.Advance(d.worked)
		_, err = svc.CheckOut(ctx, u.ID)
		require.NoError(t, err)
	}
	clock.Set(time.Date(2025, 3, 12, 17, 0, 0, 0, time.UTC))

	summary, err := svc.GetMySummary(ctx, u.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "2025-03", summary.Month)
	assert.Equal(t, 1, summary.Present)
	assert.Equal(t, 1, summary.Late)
	assert.Equal(t, 1, summary.HalfDay)
	// Mar 3-7 and 10-12 are the working days so far
	assert.Equal(t, 8, summary.WorkingDays)
	assert.Equal(t, 5, summary.Absent)
	assert.Equal(t, summary.WorkingDays, summary.Present+summary.Late+summary.HalfDay+summary.Absent)
	assert.Equal(t, 18.0, summary.TotalHours)
}

func TestGetMySummary_AbsentNeverNegative(t *testing.T) {
	ctx := context.Background()
	svc, users, clock := newTestService()
	u := createEmployee(t, users, "ana")

	// records on Saturday and Sunday plus Monday, early in the month
	for _, d := range []int{8, 9, 10} {
		clock.Set(time.Date(2025, 3, d, 9, 0, 0, 0, time.UTC))
		_, err := svc.CheckIn(ctx, u.ID)
		require.NoError(t, err)
	}
	// "today" is Monday March 3: only 1 countable working day, 3 records
	clock.Set(time.Date(2025, 3, 3, 17, 0, 0, 0, time.UTC))

	summary, err := svc.GetMySummary(ctx, u.ID, "2025-03")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Absent)
}

func TestGetDailyStatus_SetDifference(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTestService()

	var present user.User
	for i := 0; i < 5; i++ {
		u := createEmployee(t, users, fmt.Sprintf("emp%d", i))
		if i == 0 {
			present = u
		}
	}
	_, err := svc.CheckIn(ctx, present.ID)
	require.NoError(t, err)

	statuses, err := svc.GetDailyStatus(ctx, "2025-03-12")
	require.NoError(t, err)
	require.Len(t, statuses, 5)

	absent := 0
	for _, row := range statuses {
		if row.UserID == present.ID {
			assert.Equal(t, "present", row.Status)
			assert.NotNil(t, row.CheckInTime)
			continue
		}
		assert.Equal(t, "absent", row.Status)
		assert.Nil(t, row.CheckInTime)
		absent++
	}
	assert.Equal(t, 4, absent)
}

func TestGetOrgSummary_SumsRoster(t *testing.T) {
	ctx := context.Background()
	svc, users, clock := newTestService()
	a := createEmployee(t, users, "ana")
	b := createEmployee(t, users, "bo")

	_, err := svc.CheckIn(ctx, a.ID)
	require.NoError(t, err)
	clock.Set(time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC))
	_, err = svc.CheckIn(ctx, b.ID)
	require.NoError(t, err)

	org, err := svc.GetOrgSummary(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, org.Employees)
	assert.Equal(t, 8, org.WorkingDays)
	assert.Equal(t, 1, org.Present)
	assert.Equal(t, 1, org.Late)
	// 7 uncovered working days each
	assert.Equal(t, 14, org.Absent)
}

func TestGetEmployeeAttendance_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.GetEmployeeAttendance(ctx, "EMP-missing", "")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestGetMyAttendance_BadMonth(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTestService()
	u := createEmployee(t, users, "ana")

	_, err := svc.GetMyAttendance(ctx, u.ID, "March-2025")
	assert.Error(t, err)
}
