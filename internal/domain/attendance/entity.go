package attendance

import "time"

// Attendance statuses. Checkout is a one-way transition: a checked_out
// record is terminal for its day.
const (
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
)

// LocationSnapshot captures where a check-in or check-out happened. The
// geofence name and coordinates are copied into the record at transition
// time, not referenced live, so history stays valid if the location is
// later edited or deactivated.
type LocationSnapshot struct {
	LocationID     string
	LocationName   string
	Latitude       float64
	Longitude      float64
	DistanceMeters float64
}

// Attendance is one employee-day record. Date holds the absolute UTC
// instant of organizational-zone midnight for the record's calendar day;
// (EmployeeID, Date) is unique at the persistence layer.
type Attendance struct {
	ID               string
	EmployeeID       string
	Date             time.Time
	ClockIn          time.Time
	ClockOut         *time.Time
	CheckInLocation  LocationSnapshot
	CheckOutLocation *LocationSnapshot
	Status           string
	WorkHours        *float64
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined for listings and reports.
	EmployeeName *string
}
