package attendance

import "time"

type RecordResponse struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	Date         string   `json:"date"`
	CheckInTime  string   `json:"check_in_time"`
	CheckOutTime *string  `json:"check_out_time"`
	Status       string   `json:"status"`
	TotalHours   *float64 `json:"total_hours"`

	EmployeeID   *string `json:"employee_id,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Department   *string `json:"department,omitempty"`
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func (r Record) ToResponse() RecordResponse {
	return RecordResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		Date:         r.Date.Format("2006-01-02"),
		CheckInTime:  r.CheckInTime.Format("2006-01-02 15:04:05"),
		CheckOutTime: timePtrToString(r.CheckOutTime),
		Status:       string(r.Status),
		TotalHours:   r.TotalHours,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Department:   r.Department,
	}
}

// MonthlySummary rolls one user's records for one month up against the
// working-day calendar. present + late + half_day + absent always equals
// working_days.
type MonthlySummary struct {
	Month       string  `json:"month"` // "YYYY-MM"
	Present     int     `json:"present"`
	Absent      int     `json:"absent"`
	Late        int     `json:"late"`
	HalfDay     int     `json:"half_day"`
	TotalHours  float64 `json:"total_hours"`
	WorkingDays int     `json:"working_days"`
}

// DailyEmployeeStatus is one roster row of the org-wide daily view. Employees
// without a record for the date carry status "absent" and nil times.
type DailyEmployeeStatus struct {
	UserID       string   `json:"user_id"`
	EmployeeID   string   `json:"employee_id"`
	Name         string   `json:"name"`
	Department   string   `json:"department"`
	Status       string   `json:"status"`
	CheckInTime  *string  `json:"check_in_time"`
	CheckOutTime *string  `json:"check_out_time"`
	TotalHours   *float64 `json:"total_hours"`
}

// OrgSummary sums every employee's monthly summary.
type OrgSummary struct {
	Month       string  `json:"month"`
	Employees   int     `json:"employees"`
	WorkingDays int     `json:"working_days"`
	Present     int     `json:"present"`
	Absent      int     `json:"absent"`
	Late        int     `json:"late"`
	HalfDay     int     `json:"half_day"`
	TotalHours  float64 `json:"total_hours"`
}
