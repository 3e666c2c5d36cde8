package dashboard

// ========== TODAY ==========

// TodayCounts is today's roster broken down by status. Absent is inferred:
// roster size minus employees with a record. Present + Late + HalfDay +
// Absent always equals Total.
type TodayCounts struct {
	Date    string `json:"date"` // "YYYY-MM-DD"
	Present int    `json:"present"`
	Late    int    `json:"late"`
	HalfDay int    `json:"half_day"`
	Absent  int    `json:"absent"`
	Total   int    `json:"total"`
}

// EmployeeRow identifies one employee in the late/absent lists.
type EmployeeRow struct {
	UserID      string  `json:"user_id"`
	EmployeeID  string  `json:"employee_id"`
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	CheckInTime *string `json:"check_in_time,omitempty"`
}

// ========== WEEKLY TREND ==========

// TrendDay is one day of the trailing-7-day trend. Half-day records count
// under Present so the three buckets sum to the roster size.
type TrendDay struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
	Absent  int    `json:"absent"`
}

// ========== DEPARTMENTS ==========

// DepartmentStats is the current-month attendance percentage for one
// department: present-or-late records over headcount x working days to date.
type DepartmentStats struct {
	Department        string  `json:"department"`
	Headcount         int     `json:"headcount"`
	AttendancePercent float64 `json:"attendance_percent"` // [0,100], 1 decimal
}

// DashboardResponse is the combined manager dashboard payload.
type DashboardResponse struct {
	Today       TodayCounts       `json:"today"`
	LateToday   []EmployeeRow     `json:"late_today"`
	AbsentToday []EmployeeRow     `json:"absent_today"`
	WeeklyTrend []TrendDay        `json:"weekly_trend"`
	Departments []DepartmentStats `json:"departments"`
}
