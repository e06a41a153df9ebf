package settings

import "context"

// SettingsService is the provider injected into consumers (attendance,
// handlers). Implementations cache the singleton and refresh it on write,
// so the hot check-in path does not hit the database for configuration.
type SettingsService interface {
	Get(ctx context.Context) (Settings, error)
	// Refresh drops the cache and re-reads the row.
	Refresh(ctx context.Context) (Settings, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (Settings, error)
}
