package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hirepath/careers-backend-go/internal/domain/settings"
	"github.com/hirepath/careers-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements settings.SettingsRepository. The attendance_settings table
// holds a single row keyed by id = 1; a first read creates it with the
// default window hours. The ON CONFLICT DO NOTHING insert keeps concurrent
// first reads from racing.
func (s *settingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, s.db)

	selectQuery := `
		SELECT check_in_start_hour, check_in_end_hour, check_out_start_hour, updated_at
		FROM attendance_settings
		WHERE id = 1
	`

	var result settings.Settings
	err := q.QueryRow(ctx, selectQuery).Scan(
		&result.CheckInStartHour,
		&result.CheckInEndHour,
		&result.CheckOutStartHour,
		&result.UpdatedAt,
	)
	if err == nil {
		return result, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return settings.Settings{}, fmt.Errorf("failed to get attendance settings: %w", err)
	}

	insertQuery := `
		INSERT INTO attendance_settings (id, check_in_start_hour, check_in_end_hour, check_out_start_hour)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`
	_, err = q.Exec(ctx, insertQuery,
		settings.DefaultCheckInStartHour,
		settings.DefaultCheckInEndHour,
		settings.DefaultCheckOutStartHour,
	)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to seed attendance settings: %w", err)
	}

	err = q.QueryRow(ctx, selectQuery).Scan(
		&result.CheckInStartHour,
		&result.CheckInEndHour,
		&result.CheckOutStartHour,
		&result.UpdatedAt,
	)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to get attendance settings: %w", err)
	}

	return result, nil
}

// Update implements settings.SettingsRepository.
func (s *settingsRepository) Update(ctx context.Context, newSettings settings.Settings) (settings.Settings, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO attendance_settings (id, check_in_start_hour, check_in_end_hour, check_out_start_hour)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			check_in_start_hour = EXCLUDED.check_in_start_hour,
			check_in_end_hour = EXCLUDED.check_in_end_hour,
			check_out_start_hour = EXCLUDED.check_out_start_hour,
			updated_at = NOW()
		RETURNING check_in_start_hour, check_in_end_hour, check_out_start_hour, updated_at
	`

	var result settings.Settings
	err := q.QueryRow(ctx, query,
		newSettings.CheckInStartHour,
		newSettings.CheckInEndHour,
		newSettings.CheckOutStartHour,
	).Scan(
		&result.CheckInStartHour,
		&result.CheckInEndHour,
		&result.CheckOutStartHour,
		&result.UpdatedAt,
	)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to update attendance settings: %w", err)
	}

	return result, nil
}
