package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/models"
)

// settingsRepository is the SQL-backed implementation of [SettingsRepository]
// against the "user_settings" table. The table holds at most one row per
// user, keyed by user_id.
type settingsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSettingsRepository constructs a [SettingsRepository] backed by the
// provided database connection and logger.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the user's stored settings. If no row exists yet the defaults
// are returned instead of an error, so callers always receive a usable
// settings value.
func (r *settingsRepository) Get(ctx context.Context, userID int64) (models.UserSettings, error) {
	log := logger.FromContext(ctx)

	var settings models.UserSettings
	row := r.db.QueryRowContext(ctx, getSettings, userID)

	if err := row.Scan(&settings.UserID, &settings.Theme, &settings.Language); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultSettings(userID), nil
		}

		log.Err(err).Str("func", "*settingsRepository.Get").Msg("error: scanning error")
		return models.UserSettings{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return settings, nil
}

// Upsert stores the user's settings, replacing any previously stored row.
//
// Error handling:
//   - foreign key violation (unknown user) → [ErrUserNotFound].
func (r *settingsRepository) Upsert(ctx context.Context, settings models.UserSettings) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, upsertSettings, settings.UserID, settings.Theme, settings.Language); err != nil {
		log.Err(err).Str("func", "*settingsRepository.Upsert").Msg("error: executing upsert")

		if isForeignKeyViolation(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
