package settings

import "context"

type SettingsRepository interface {
	// Get returns the singleton row, creating it with defaults if absent.
	Get(ctx context.Context) (Settings, error)

	// Update overwrites the singleton row. Concurrent admin writes are
	// last-write-wins by ordinary row semantics.
	Update(ctx context.Context, s Settings) (Settings, error)
}
