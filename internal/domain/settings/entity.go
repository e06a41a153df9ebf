package settings

import "time"

// Default check-in/out window hours, applied when the singleton row is
// lazily created on first read.
const (
	DefaultCheckInStartHour  = 10
	DefaultCheckInEndHour    = 11
	DefaultCheckOutStartHour = 19
)

// Settings is the singleton attendance configuration: the permitted
// check-in window [CheckInStartHour, CheckInEndHour) and the earliest
// check-out hour, all as org-zone hours of day.
type Settings struct {
	CheckInStartHour  int
	CheckInEndHour    int
	CheckOutStartHour int
	UpdatedAt         time.Time
}
