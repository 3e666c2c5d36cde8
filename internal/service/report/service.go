package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/shiftly-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftly-hq/attendance-backend-go/internal/domain/report"
)

var csvHeader = []string{"Employee ID", "Name", "Department", "Date", "Check In", "Check Out", "Status", "Hours Worked"}

type ReportServiceImpl struct {
	attendance.AttendanceRepository
}

func NewReportService(attendanceRepo attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{AttendanceRepository: attendanceRepo}
}

// ExportAttendanceCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendanceCSV(ctx context.Context, filter attendance.Filter) ([]byte, error) {
	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(csvRow(rec)); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func csvRow(rec attendance.Record) []string {
	checkOut := "-"
	if rec.CheckOutTime != nil {
		checkOut = rec.CheckOutTime.Format("3:04 PM")
	}
	hours := "-"
	if rec.TotalHours != nil {
		hours = strconv.FormatFloat(*rec.TotalHours, 'f', 1, 64)
	}

	return []string{
		deref(rec.EmployeeID),
		deref(rec.EmployeeName),
		deref(rec.Department),
		rec.Date.Format("2006-01-02"),
		rec.CheckInTime.Format("3:04 PM"),
		checkOut,
		string(rec.Status),
		hours,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
