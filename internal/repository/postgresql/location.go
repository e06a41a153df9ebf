package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hirepath/careers-backend-go/internal/domain/location"
	"github.com/hirepath/careers-backend-go/internal/pkg/database"
)

type locationRepository struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepository{db: db}
}

// Create implements location.LocationRepository.
func (l *locationRepository) Create(ctx context.Context, loc location.Location) (location.Location, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO locations (name, address, latitude, longitude, radius_meters, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		loc.Name,
		loc.Address,
		loc.Latitude,
		loc.Longitude,
		loc.RadiusMeters,
		loc.IsActive,
	).Scan(&loc.ID, &loc.CreatedAt, &loc.UpdatedAt)
	if err != nil {
		return location.Location{}, fmt.Errorf("failed to create location: %w", err)
	}

	return loc, nil
}

// GetByID implements location.LocationRepository.
func (l *locationRepository) GetByID(ctx context.Context, id string) (location.Location, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, name, address, latitude, longitude, radius_meters, is_active, created_at, updated_at
		FROM locations
		WHERE id = $1
	`

	var loc location.Location
	err := q.QueryRow(ctx, query, id).Scan(
		&loc.ID, &loc.Name, &loc.Address, &loc.Latitude, &loc.Longitude,
		&loc.RadiusMeters, &loc.IsActive, &loc.CreatedAt, &loc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return location.Location{}, location.ErrLocationNotFound
		}
		return location.Location{}, fmt.Errorf("failed to get location by ID: %w", err)
	}

	return loc, nil
}

// ListActive implements location.LocationRepository. The (created_at, id)
// ordering is load-bearing: geofence resolution takes the first containing
// location, so overlapping sites resolve deterministically by registration
// order.
func (l *locationRepository) ListActive(ctx context.Context) ([]location.Location, error) {
	return l.list(ctx, `
		SELECT id, name, address, latitude, longitude, radius_meters, is_active, created_at, updated_at
		FROM locations
		WHERE is_active = TRUE
		ORDER BY created_at ASC, id ASC
	`)
}

// List implements location.LocationRepository.
func (l *locationRepository) List(ctx context.Context) ([]location.Location, error) {
	return l.list(ctx, `
		SELECT id, name, address, latitude, longitude, radius_meters, is_active, created_at, updated_at
		FROM locations
		ORDER BY created_at ASC, id ASC
	`)
}

func (l *locationRepository) list(ctx context.Context, query string) ([]location.Location, error) {
	q := GetQuerier(ctx, l.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var result []location.Location
	for rows.Next() {
		var loc location.Location
		err := rows.Scan(
			&loc.ID, &loc.Name, &loc.Address, &loc.Latitude, &loc.Longitude,
			&loc.RadiusMeters, &loc.IsActive, &loc.CreatedAt, &loc.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		result = append(result, loc)
	}

	return result, rows.Err()
}

// Update implements location.LocationRepository.
func (l *locationRepository) Update(ctx context.Context, loc location.Location) (location.Location, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE locations SET
			name = $2,
			address = $3,
			latitude = $4,
			longitude = $5,
			radius_meters = $6,
			is_active = $7,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		loc.ID, loc.Name, loc.Address, loc.Latitude, loc.Longitude,
		loc.RadiusMeters, loc.IsActive,
	).Scan(&loc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return location.Location{}, location.ErrLocationNotFound
		}
		return location.Location{}, fmt.Errorf("failed to update location: %w", err)
	}

	return loc, nil
}
