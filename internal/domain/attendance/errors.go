package attendance

import "errors"

// Attendance domain errors. All of these are user-correctable conditions
// surfaced as explanatory messages, never process-fatal.
var (
	// Check-in errors
	ErrAlreadyCheckedIn     = errors.New("you have already checked in today")
	ErrOutsideGeofence      = errors.New("you are not inside any registered check-in location")
	ErrOutsideCheckInWindow = errors.New("check-in is not open at this hour")

	// Check-out errors
	ErrNoActiveCheckIn       = errors.New("no active check-in found for today")
	ErrOutsideCheckOutWindow = errors.New("check-out is not open yet")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
