package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftly-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftly-hq/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db database.Querier
}

func NewAttendanceRepository(db database.Querier) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const recordColumns = `a.id, a.user_id, a.date, a.check_in_time, a.check_out_time, a.status, a.total_hours, a.created_at`

const recordJoinColumns = recordColumns + `, u.employee_id, u.name, u.department`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	var status string
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Date, &rec.CheckInTime, &rec.CheckOutTime, &status, &rec.TotalHours, &rec.CreatedAt)
	rec.Status = attendance.Status(status)
	return rec, err
}

func scanRecordWithUser(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	var status string
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.CheckInTime, &rec.CheckOutTime, &status, &rec.TotalHours, &rec.CreatedAt,
		&rec.EmployeeID, &rec.EmployeeName, &rec.Department,
	)
	rec.Status = attendance.Status(status)
	return rec, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_records (id, user_id, date, check_in_time, check_out_time, status, total_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		record.ID,
		record.UserID,
		record.Date.Format("2006-01-02"),
		record.CheckInTime,
		record.CheckOutTime,
		string(record.Status),
		record.TotalHours,
	).Scan(&record.CreatedAt)

	if err != nil {
		if uniqueViolation(err, "attendance_records_user_id_date_key") {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records a
		WHERE a.user_id = $1 AND a.date = $2
		LIMIT 1
	`

	rec, err := scanRecord(r.db.QueryRow(ctx, query, userID, date.Format("2006-01-02")))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for this day
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &rec, nil
}

// Update implements attendance.AttendanceRepository. Only the patch fields
// are ever written; identity, date and check-in data stay immutable.
func (r *attendanceRepository) Update(ctx context.Context, id string, patch attendance.RecordPatch) (attendance.Record, error) {
	query := `
		UPDATE attendance_records SET
			check_out_time = COALESCE($2, check_out_time),
			total_hours    = COALESCE($3, total_hours),
			status         = COALESCE($4, status)
		WHERE id = $1
		RETURNING id, user_id, date, check_in_time, check_out_time, status, total_hours, created_at
	`

	var statusArg *string
	if patch.Status != nil {
		s := string(*patch.Status)
		statusArg = &s
	}

	rec, err := scanRecord(r.db.QueryRow(ctx, query, id, patch.CheckOutTime, patch.TotalHours, statusArg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return rec, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByUser(ctx context.Context, userID string, month string) ([]attendance.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records a
		WHERE a.user_id = $1
	`
	args := []interface{}{userID}

	if month != "" {
		query += ` AND to_char(a.date, 'YYYY-MM') = $2`
		args = append(args, month)
	}
	query += ` ORDER BY a.date DESC`

	return r.queryRecords(ctx, query, args, scanRecord)
}

// List implements attendance.AttendanceRepository. Filters are conjunctive.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	var conditions []string
	var args []interface{}

	addCondition := func(expr string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}

	if filter.UserID != "" {
		addCondition("a.user_id = $%d", filter.UserID)
	}
	if filter.Status != "" {
		addCondition("a.status = $%d", string(filter.Status))
	}
	if filter.Date != nil {
		addCondition("a.date = $%d", filter.Date.Format("2006-01-02"))
	}
	if filter.DateFrom != nil {
		addCondition("a.date >= $%d", filter.DateFrom.Format("2006-01-02"))
	}
	if filter.DateTo != nil {
		addCondition("a.date <= $%d", filter.DateTo.Format("2006-01-02"))
	}

	query := `
		SELECT ` + recordJoinColumns + `
		FROM attendance_records a
		JOIN users u ON u.id = a.user_id
	`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY a.date DESC, u.name`

	return r.queryRecords(ctx, query, args, scanRecordWithUser)
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	query := `
		SELECT ` + recordJoinColumns + `
		FROM attendance_records a
		JOIN users u ON u.id = a.user_id
		WHERE a.date = $1
		ORDER BY u.name
	`

	return r.queryRecords(ctx, query, []interface{}{date.Format("2006-01-02")}, scanRecordWithUser)
}

func (r *attendanceRepository) queryRecords(ctx context.Context, query string, args []interface{}, scan func(pgx.Row) (attendance.Record, error)) ([]attendance.Record, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}
