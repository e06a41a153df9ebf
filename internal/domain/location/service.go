package location

import "context"

type LocationService interface {
	// FindContaining evaluates every active location in registration order
	// and returns the first whose radius contains the point (boundary
	// inclusive: distance <= radius), with the computed distance. A nil
	// match means no geofence contains the point; that is a normal outcome,
	// not an error. When geofences overlap, the earliest-registered one
	// wins.
	FindContaining(ctx context.Context, lat, lon float64) (*Match, error)

	Create(ctx context.Context, req CreateLocationRequest) (LocationResponse, error)
	Get(ctx context.Context, id string) (LocationResponse, error)
	List(ctx context.Context, includeInactive bool) ([]LocationResponse, error)
	Update(ctx context.Context, id string, req UpdateLocationRequest) (LocationResponse, error)
	// Deactivate soft-disables a location. Locations are never hard-deleted.
	Deactivate(ctx context.Context, id string) error
}
