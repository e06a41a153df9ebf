// Package orgtime resolves calendar-day and month boundaries as observed in
// the organization's time zone. Attendance defines "day" in that fixed zone,
// never in UTC or the host locale, so every function takes the zone
// explicitly and returns absolute UTC instants suitable for storage and
// range queries.
package orgtime

import "time"

// DayStart returns the UTC instant of midnight, in loc, of the calendar day
// containing t. This instant is the canonical day key for attendance records.
func DayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).UTC()
}

// DayBounds returns the first and last instants of the calendar day in loc
// that contains t, converted to UTC. The end bound is the final represented
// millisecond (23:59:59.999 local), matching the stored record layout, so
// range queries use inclusive comparisons on both sides.
func DayBounds(t time.Time, loc *time.Location) (start, end time.Time) {
	local := t.In(loc)
	start = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).UTC()
	next := time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc).UTC()
	return start, next.Add(-time.Millisecond)
}

// MonthBounds returns the first and last instants of the given calendar
// month in loc, converted to UTC.
func MonthBounds(year int, month time.Month, loc *time.Location) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, loc).UTC()
	next := time.Date(year, month+1, 1, 0, 0, 0, 0, loc).UTC()
	return start, next.Add(-time.Millisecond)
}

// HourIn returns the hour of day [0,23] of t as observed in loc.
func HourIn(t time.Time, loc *time.Location) int {
	return t.In(loc).Hour()
}
