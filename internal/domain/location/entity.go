package location

import "time"

// Location is a named geofenced site an employee may check in from: a
// circular region around a center coordinate. Locations are never deleted,
// only deactivated, so historical attendance snapshots stay resolvable.
type Location struct {
	ID           string
	Name         string
	Address      string
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Match pairs a containing location with the computed distance from the
// probed point to its center.
type Match struct {
	Location       Location
	DistanceMeters float64
}
