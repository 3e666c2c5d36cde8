package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out state machine violations
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNoCheckInFound    = errors.New("no check-in found for today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")

	// Storage-level signals
	ErrDuplicateRecord = errors.New("attendance record already exists for this date")
	ErrRecordNotFound  = errors.New("attendance record not found")
)
