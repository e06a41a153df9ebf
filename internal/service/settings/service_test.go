package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirepath/careers-backend-go/internal/domain/settings"
)

// fakeSettingsRepo mimics the lazy-creating singleton row.
type fakeSettingsRepo struct {
	stored   *settings.Settings
	getCalls int
}

func (f *fakeSettingsRepo) Get(_ context.Context) (settings.Settings, error) {
	f.getCalls++
	if f.stored == nil {
		f.stored = &settings.Settings{
			CheckInStartHour:  settings.DefaultCheckInStartHour,
			CheckInEndHour:    settings.DefaultCheckInEndHour,
			CheckOutStartHour: settings.DefaultCheckOutStartHour,
			UpdatedAt:         time.Now().UTC(),
		}
	}
	return *f.stored, nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, s settings.Settings) (settings.Settings, error) {
	s.UpdatedAt = time.Now().UTC()
	f.stored = &s
	return s, nil
}

func intPtr(v int) *int { return &v }

func TestGet_LazyDefaults(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, got.CheckInStartHour)
	assert.Equal(t, 11, got.CheckInEndHour)
	assert.Equal(t, 19, got.CheckOutStartHour)
}

func TestGet_UsesCache(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)
	ctx := context.Background()

	_, err := svc.Get(ctx)
	require.NoError(t, err)
	_, err = svc.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.getCalls)
}

func TestUpdate_PartialMergesWithStored(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)
	ctx := context.Background()

	updated, err := svc.Update(ctx, settings.UpdateSettingsRequest{
		CheckOutStartHour: intPtr(18),
	})
	require.NoError(t, err)

	assert.Equal(t, 10, updated.CheckInStartHour)
	assert.Equal(t, 11, updated.CheckInEndHour)
	assert.Equal(t, 18, updated.CheckOutStartHour)

	// The cache is refreshed on write.
	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 18, got.CheckOutStartHour)
}

func TestUpdate_RejectsInvertedWindow(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	_, err := svc.Update(context.Background(), settings.UpdateSettingsRequest{
		CheckInStartHour: intPtr(12),
		CheckInEndHour:   intPtr(10),
	})
	assert.ErrorIs(t, err, settings.ErrInvalidSettings)
}

func TestUpdate_RejectsOutOfRangeHour(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	_, err := svc.Update(context.Background(), settings.UpdateSettingsRequest{
		CheckInStartHour: intPtr(24),
	})
	assert.ErrorIs(t, err, settings.ErrInvalidSettings)

	_, err = svc.Update(context.Background(), settings.UpdateSettingsRequest{
		CheckOutStartHour: intPtr(-1),
	})
	assert.ErrorIs(t, err, settings.ErrInvalidSettings)
}

func TestUpdate_SingleBoundCannotBreakInvariant(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	// Stored end is 11; raising only the start past it must fail even
	// though the request itself carries one valid hour.
	_, err := svc.Update(context.Background(), settings.UpdateSettingsRequest{
		CheckInStartHour: intPtr(11),
	})
	assert.ErrorIs(t, err, settings.ErrInvalidSettings)
}
