package attendance

import (
	"math"
	"time"
)

// Classification and aggregation rules. These are pure functions so both
// store backends share exactly one implementation of the business rules.

// Check-ins at or before 09:15:00 are present; strictly after is late.
const lateCutoffSeconds = 9*3600 + 15*60

// Fewer than this many worked hours downgrades the day to half-day.
const HalfDayThresholdHours = 4.0

// ClassifyCheckIn returns the status a check-in at t earns. t must already be
// in the org timezone.
func ClassifyCheckIn(t time.Time) Status {
	secondsOfDay := t.Hour()*3600 + t.Minute()*60 + t.Second()
	if secondsOfDay > lateCutoffSeconds {
		return StatusLate
	}
	return StatusPresent
}

// RoundHours rounds to one decimal place, half up. math.Round would round
// halves away from zero; elapsed durations are never negative here so the
// explicit floor form keeps the rule visible.
func RoundHours(h float64) float64 {
	return math.Floor(h*10+0.5) / 10
}

// IsWorkingDay reports whether the weekday is Monday through Friday.
// Holidays are not modeled: every non-weekend day counts.
func IsWorkingDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// WorkingDaysInMonth counts Mon-Fri days in the whole month.
func WorkingDaysInMonth(year int, month time.Month) int {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return workingDaysThrough(year, month, daysInMonth)
}

// WorkingDaysToDate counts Mon-Fri days in the month of `today`, from the 1st
// through today inclusive.
func WorkingDaysToDate(today time.Time) int {
	return workingDaysThrough(today.Year(), today.Month(), today.Day())
}

func workingDaysThrough(year int, month time.Month, lastDay int) int {
	count := 0
	for day := 1; day <= lastDay; day++ {
		if IsWorkingDay(time.Date(year, month, day, 0, 0, 0, 0, time.UTC)) {
			count++
		}
	}
	return count
}

// CountableWorkingDays is the denominator for absence inference: future
// working days of the current month are excluded, past months count in full.
func CountableWorkingDays(year int, month time.Month, today time.Time) int {
	if year == today.Year() && month == today.Month() {
		return WorkingDaysToDate(today)
	}
	return WorkingDaysInMonth(year, month)
}

// DateOf truncates a timestamp to its calendar date in the same location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
