package location

import "context"

type LocationRepository interface {
	Create(ctx context.Context, loc Location) (Location, error)

	GetByID(ctx context.Context, id string) (Location, error)

	// ListActive returns active locations in registration order
	// (created_at, id). Iteration order is part of the geofence contract:
	// overlapping geofences resolve to the first match.
	ListActive(ctx context.Context) ([]Location, error)

	// List returns all locations, active and deactivated, for the
	// back-office.
	List(ctx context.Context) ([]Location, error)

	// Update writes all mutable fields and returns the stored row so the
	// caller sees the database-assigned updated_at.
	Update(ctx context.Context, loc Location) (Location, error)
}
