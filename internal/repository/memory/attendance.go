package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shiftly-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftly-hq/attendance-backend-go/internal/domain/user"
)

type AttendanceRepository struct {
	mu        sync.RWMutex
	byID      map[string]attendance.Record
	byUserDay map[string]string // userID + "|" + "YYYY-MM-DD" -> record id

	users *UserRepository // identity joins for list queries
}

func NewAttendanceRepository(users *UserRepository) *AttendanceRepository {
	return &AttendanceRepository{
		byID:      make(map[string]attendance.Record),
		byUserDay: make(map[string]string),
		users:     users,
	}
}

func dayKey(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

// Create implements attendance.AttendanceRepository. The natural-key check
// and the insert run under one lock, so concurrent check-ins for the same
// user and day yield exactly one success.
func (r *AttendanceRepository) Create(_ context.Context, record attendance.Record) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey(record.UserID, record.Date)
	if _, exists := r.byUserDay[key]; exists {
		return attendance.Record{}, attendance.ErrDuplicateRecord
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	r.byID[record.ID] = record
	r.byUserDay[key] = record.ID

	return record, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *AttendanceRepository) GetByUserAndDate(_ context.Context, userID string, date time.Time) (*attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUserDay[dayKey(userID, date)]
	if !ok {
		return nil, nil
	}
	rec := r.byID[id]
	return &rec, nil
}

// Update implements attendance.AttendanceRepository.
func (r *AttendanceRepository) Update(_ context.Context, id string, patch attendance.RecordPatch) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}

	if patch.CheckOutTime != nil {
		t := *patch.CheckOutTime
		rec.CheckOutTime = &t
	}
	if patch.TotalHours != nil {
		h := *patch.TotalHours
		rec.TotalHours = &h
	}
	if patch.Status != nil {
		rec.Status = *patch.Status
	}

	r.byID[id] = rec
	return rec, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (r *AttendanceRepository) ListByUser(_ context.Context, userID string, month string) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []attendance.Record
	for _, rec := range r.byID {
		if rec.UserID != userID {
			continue
		}
		if month != "" && rec.Date.Format("2006-01") != month {
			continue
		}
		records = append(records, rec)
	}
	sortByDateDesc(records)

	return records, nil
}

// List implements attendance.AttendanceRepository.
func (r *AttendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	r.mu.RLock()
	var records []attendance.Record
	for _, rec := range r.byID {
		if matchesFilter(rec, filter) {
			records = append(records, rec)
		}
	}
	r.mu.RUnlock()

	if err := r.joinUsers(ctx, records); err != nil {
		return nil, err
	}
	sortByDateDesc(records)

	return records, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *AttendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	d := date
	return r.List(ctx, attendance.Filter{Date: &d})
}

func matchesFilter(rec attendance.Record, filter attendance.Filter) bool {
	if filter.UserID != "" && rec.UserID != filter.UserID {
		return false
	}
	if filter.Status != "" && rec.Status != filter.Status {
		return false
	}
	day := rec.Date.Format("2006-01-02")
	if filter.Date != nil && day != filter.Date.Format("2006-01-02") {
		return false
	}
	if filter.DateFrom != nil && day < filter.DateFrom.Format("2006-01-02") {
		return false
	}
	if filter.DateTo != nil && day > filter.DateTo.Format("2006-01-02") {
		return false
	}
	return true
}

func (r *AttendanceRepository) joinUsers(ctx context.Context, records []attendance.Record) error {
	for i := range records {
		u, err := r.users.GetByID(ctx, records[i].UserID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				continue // weak reference; leave identity empty
			}
			return err
		}
		employeeID, name, department := u.EmployeeID, u.Name, u.Department
		records[i].EmployeeID = &employeeID
		records[i].EmployeeName = &name
		records[i].Department = &department
	}
	return nil
}

func sortByDateDesc(records []attendance.Record) {
	sort.Slice(records, func(i, j int) bool {
		di, dj := records[i].Date, records[j].Date
		if !di.Equal(dj) {
			return di.After(dj)
		}
		ni := records[i].EmployeeName
		nj := records[j].EmployeeName
		if ni != nil && nj != nil && *ni != *nj {
			return *ni < *nj
		}
		return records[i].ID < records[j].ID
	})
}
