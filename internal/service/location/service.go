package location

import (
	"context"
	"fmt"
	"time"

	"github.com/hirepath/careers-backend-go/internal/domain/location"
	"github.com/hirepath/careers-backend-go/internal/pkg/utils"
)

type LocationServiceImpl struct {
	location.LocationRepository
}

func NewLocationService(locationRepository location.LocationRepository) location.LocationService {
	return &LocationServiceImpl{LocationRepository: locationRepository}
}

// FindContaining implements location.LocationService. Active locations are
// walked in registration order and the first circle containing the point
// wins; containment is boundary-inclusive (distance <= radius). A nil match
// is the normal no-geofence outcome, not an error.
func (l *LocationServiceImpl) FindContaining(ctx context.Context, lat, lon float64) (*location.Match, error) {
	locations, err := l.LocationRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active locations: %w", err)
	}

	for _, loc := range locations {
		distance := utils.HaversineDistance(lat, lon, loc.Latitude, loc.Longitude)
		if distance <= float64(loc.RadiusMeters) {
			return &location.Match{Location: loc, DistanceMeters: distance}, nil
		}
	}

	return nil, nil
}

// Create implements location.LocationService.
func (l *LocationServiceImpl) Create(ctx context.Context, req location.CreateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	loc, err := l.LocationRepository.Create(ctx, location.Location{
		Name:         req.Name,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
		IsActive:     true,
	})
	if err != nil {
		return location.LocationResponse{}, err
	}

	return toResponse(loc), nil
}

// Get implements location.LocationService.
func (l *LocationServiceImpl) Get(ctx context.Context, id string) (location.LocationResponse, error) {
	loc, err := l.LocationRepository.GetByID(ctx, id)
	if err != nil {
		return location.LocationResponse{}, err
	}
	return toResponse(loc), nil
}

// List implements location.LocationService.
func (l *LocationServiceImpl) List(ctx context.Context, includeInactive bool) ([]location.LocationResponse, error) {
	var locations []location.Location
	var err error
	if includeInactive {
		locations, err = l.LocationRepository.List(ctx)
	} else {
		locations, err = l.LocationRepository.ListActive(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	result := make([]location.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		result = append(result, toResponse(loc))
	}
	return result, nil
}

// Update implements location.LocationService.
func (l *LocationServiceImpl) Update(ctx context.Context, id string, req location.UpdateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	loc, err := l.LocationRepository.GetByID(ctx, id)
	if err != nil {
		return location.LocationResponse{}, err
	}

	if req.Name != nil {
		loc.Name = *req.Name
	}
	if req.Address != nil {
		loc.Address = *req.Address
	}
	if req.Latitude != nil {
		loc.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		loc.Longitude = *req.Longitude
	}
	if req.RadiusMeters != nil {
		loc.RadiusMeters = *req.RadiusMeters
	}
	if req.IsActive != nil {
		loc.IsActive = *req.IsActive
	}

	updated, err := l.LocationRepository.Update(ctx, loc)
	if err != nil {
		return location.LocationResponse{}, err
	}

	return toResponse(updated), nil
}

// Deactivate implements location.LocationService. Locations are never hard
// deleted so historical attendance snapshots stay resolvable.
func (l *LocationServiceImpl) Deactivate(ctx context.Context, id string) error {
	loc, err := l.LocationRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	loc.IsActive = false
	_, err = l.LocationRepository.Update(ctx, loc)
	return err
}

func toResponse(loc location.Location) location.LocationResponse {
	return location.LocationResponse{
		ID:           loc.ID,
		Name:         loc.Name,
		Address:      loc.Address,
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
		RadiusMeters: loc.RadiusMeters,
		IsActive:     loc.IsActive,
		CreatedAt:    loc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    loc.UpdatedAt.Format(time.RFC3339),
	}
}
