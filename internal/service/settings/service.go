package settings

import (
	"context"
	"fmt"
	"sync"

	"github.com/hirepath/careers-backend-go/internal/domain/settings"
)

// SettingsServiceImpl caches the singleton row in memory so the check-in
// hot path never reads configuration from the database. The cache is
// replaced on Update and Refresh; concurrent admin writes are
// last-write-wins, which is accepted for this write frequency.
type SettingsServiceImpl struct {
	settings.SettingsRepository

	mu     sync.RWMutex
	cached *settings.Settings
}

func NewSettingsService(settingsRepository settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{SettingsRepository: settingsRepository}
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.Settings, error) {
	s.mu.RLock()
	if s.cached != nil {
		cached := *s.cached
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	return s.Refresh(ctx)
}

// Refresh implements settings.SettingsService.
func (s *SettingsServiceImpl) Refresh(ctx context.Context) (settings.Settings, error) {
	current, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to load attendance settings: %w", err)
	}

	s.mu.Lock()
	s.cached = &current
	s.mu.Unlock()

	return current, nil
}

// Update implements settings.SettingsService. Partial updates are merged
// with the stored row before validation, so a single-field update can never
// break the check_in_start_hour < check_in_end_hour invariant.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return settings.Settings{}, err
	}

	merged := current
	if req.CheckInStartHour != nil {
		merged.CheckInStartHour = *req.CheckInStartHour
	}
	if req.CheckInEndHour != nil {
		merged.CheckInEndHour = *req.CheckInEndHour
	}
	if req.CheckOutStartHour != nil {
		merged.CheckOutStartHour = *req.CheckOutStartHour
	}

	if err := validate(merged); err != nil {
		return settings.Settings{}, err
	}

	updated, err := s.SettingsRepository.Update(ctx, merged)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to update attendance settings: %w", err)
	}

	s.mu.Lock()
	s.cached = &updated
	s.mu.Unlock()

	return updated, nil
}

func validate(merged settings.Settings) error {
	for _, hour := range []int{merged.CheckInStartHour, merged.CheckInEndHour, merged.CheckOutStartHour} {
		if hour < 0 || hour > 23 {
			return settings.ErrInvalidSettings
		}
	}
	if merged.CheckInStartHour >= merged.CheckInEndHour {
		return settings.ErrInvalidSettings
	}
	return nil
}
