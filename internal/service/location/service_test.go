package location

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirepath/careers-backend-go/internal/domain/location"
)

type fakeLocationRepo struct {
	locations []location.Location
	nextID    int
}

func (f *fakeLocationRepo) Create(_ context.Context, loc location.Location) (location.Location, error) {
	f.nextID++
	loc.ID = fmt.Sprintf("loc-%d", f.nextID)
	f.locations = append(f.locations, loc)
	return loc, nil
}

func (f *fakeLocationRepo) GetByID(_ context.Context, id string) (location.Location, error) {
	for _, loc := range f.locations {
		if loc.ID == id {
			return loc, nil
		}
	}
	return location.Location{}, location.ErrLocationNotFound
}

func (f *fakeLocationRepo) ListActive(_ context.Context) ([]location.Location, error) {
	var result []location.Location
	for _, loc := range f.locations {
		if loc.IsActive {
			result = append(result, loc)
		}
	}
	return result, nil
}

func (f *fakeLocationRepo) List(_ context.Context) ([]location.Location, error) {
	return f.locations, nil
}

func (f *fakeLocationRepo) Update(_ context.Context, loc location.Location) (location.Location, error) {
	for i := range f.locations {
		if f.locations[i].ID == loc.ID {
			loc.UpdatedAt = time.Now().UTC()
			f.locations[i] = loc
			return loc, nil
		}
	}
	return location.Location{}, location.ErrLocationNotFound
}

func TestFindContaining_BoundaryInclusive(t *testing.T) {
	repo := &fakeLocationRepo{}
	svc := NewLocationService(repo)
	ctx := context.Background()

	// Roughly 111 meters of latitude per 0.001 degree near the equator;
	// build a circle whose radius just covers that offset.
	_, err := svc.Create(ctx, location.CreateLocationRequest{
		Name:         "Office",
		Latitude:     28.6,
		Longitude:    77.2,
		RadiusMeters: 120,
	})
	require.NoError(t, err)

	match, err := svc.FindContaining(ctx, 28.601, 77.2)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "Office", match.Location.Name)
	assert.InDelta(t, 111, match.DistanceMeters, 2)

	// Outside the radius: no containing location, and that is not an error.
	match, err = svc.FindContaining(ctx, 28.605, 77.2)
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestFindContaining_CenterPoint(t *testing.T) {
	repo := &fakeLocationRepo{}
	svc := NewLocationService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, location.CreateLocationRequest{
		Name:         "Office",
		Latitude:     -6.2,
		Longitude:    106.8,
		RadiusMeters: 10,
	})
	require.NoError(t, err)

	match, err := svc.FindContaining(ctx, -6.2, 106.8)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Zero(t, match.DistanceMeters)
}

func TestFindContaining_OverlappingFirstMatchWins(t *testing.T) {
	repo := &fakeLocationRepo{}
	svc := NewLocationService(repo)
	ctx := context.Background()

	// Two concentric geofences; the earlier-registered one must win even
	// though both contain the probe point.
	_, err := svc.Create(ctx, location.CreateLocationRequest{
		Name:         "First",
		Latitude:     28.6,
		Longitude:    77.2,
		RadiusMeters: 500,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, location.CreateLocationRequest{
		Name:         "Second",
		Latitude:     28.6,
		Longitude:    77.2,
		RadiusMeters: 500,
	})
	require.NoError(t, err)

	match, err := svc.FindContaining(ctx, 28.6001, 77.2001)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "First", match.Location.Name)
}

func TestFindContaining_SkipsInactive(t *testing.T) {
	repo := &fakeLocationRepo{}
	svc := NewLocationService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, location.CreateLocationRequest{
		Name:         "Closed Site",
		Latitude:     28.6,
		Longitude:    77.2,
		RadiusMeters: 500,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, created.ID))

	match, err := svc.FindContaining(ctx, 28.6, 77.2)
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestCreate_RejectsBadRadius(t *testing.T) {
	repo := &fakeLocationRepo{}
	svc := NewLocationService(repo)

	_, err := svc.Create(context.Background(), location.CreateLocationRequest{
		Name:         "Office",
		Latitude:     28.6,
		Longitude:    77.2,
		RadiusMeters: 5,
	})
	assert.Error(t, err)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := &fakeLocationRepo{}
	svc := NewLocationService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, location.CreateLocationRequest{
		Name:         "Office",
		Address:      "Jl. Sudirman 1",
		Latitude:     -6.2,
		Longitude:    106.8,
		RadiusMeters: 100,
	})
	require.NoError(t, err)

	newRadius := 250
	updated, err := svc.Update(ctx, created.ID, location.UpdateLocationRequest{
		RadiusMeters: &newRadius,
	})
	require.NoError(t, err)

	assert.Equal(t, 250, updated.RadiusMeters)
	assert.Equal(t, "Office", updated.Name)
	assert.Equal(t, "Jl. Sudirman 1", updated.Address)
}

func TestUpdate_ResponseCarriesStoredTimestamp(t *testing.T) {
	repo := &fakeLocationRepo{}
	svc := NewLocationService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, location.CreateLocationRequest{
		Name:         "Office",
		Address:      "Jl. Sudirman 1",
		Latitude:     -6.2,
		Longitude:    106.8,
		RadiusMeters: 100,
	})
	require.NoError(t, err)

	newName := "Head Office"
	updated, err := svc.Update(ctx, created.ID, location.UpdateLocationRequest{Name: &newName})
	require.NoError(t, err)

	require.Len(t, repo.locations, 1)
	assert.Equal(t, repo.locations[0].UpdatedAt.Format(time.RFC3339), updated.UpdatedAt)
}
