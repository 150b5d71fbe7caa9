package store

import (
	"context"
	"fmt"

	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/models"
)

// DefaultHistoryLimit caps history listings when the caller does not ask for
// a specific page size.
const DefaultHistoryLimit = 10

// historyRepository is the SQL-backed implementation of [HistoryRepository]
// against the "weather_history" table. The UNIQUE (user_id, city, date)
// constraint guarantees at most one snapshot per user, city and day;
// re-saving the same day overwrites the measured values in place.
type historyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHistoryRepository constructs a [HistoryRepository] backed by the
// provided database connection and logger.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating history repository")
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert stores the snapshot, overwriting the existing row for the same
// (user, city, date) if one exists. The stored row is returned with
// server-assigned fields filled in.
//
// Error handling:
//   - foreign key violation (unknown user) → [ErrUserNotFound].
func (r *historyRepository) Upsert(ctx context.Context, snapshot models.WeatherSnapshot) (models.WeatherSnapshot, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertSnapshot,
		snapshot.UserID, snapshot.City, snapshot.Date,
		snapshot.Temp, snapshot.Description, snapshot.Icon, snapshot.Humidity, snapshot.Wind)

	if err := row.Scan(&snapshot.ID, &snapshot.UserID, &snapshot.City, &snapshot.Date,
		&snapshot.Temp, &snapshot.Description, &snapshot.Icon, &snapshot.Humidity, &snapshot.Wind,
		&snapshot.CreatedAt); err != nil {
		log.Err(err).Str("func", "*historyRepository.Upsert").Msg("error: upserting snapshot")

		if isForeignKeyViolation(err) {
			return models.WeatherSnapshot{}, ErrUserNotFound
		}
		return models.WeatherSnapshot{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return snapshot, nil
}

// List returns the user's saved snapshots, newest days first. A non-empty
// city narrows the result to that city. A non-positive limit falls back to
// [DefaultHistoryLimit].
func (r *historyRepository) List(ctx context.Context, userID int64, city string, limit int) ([]models.WeatherSnapshot, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	query, args, err := buildListSnapshotsQuery(userID, city, limit)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.List").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.List").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	snapshots := make([]models.WeatherSnapshot, 0)
	for rows.Next() {
		var snapshot models.WeatherSnapshot
		if err := rows.Scan(&snapshot.ID, &snapshot.UserID, &snapshot.City, &snapshot.Date,
			&snapshot.Temp, &snapshot.Description, &snapshot.Icon, &snapshot.Humidity, &snapshot.Wind,
			&snapshot.CreatedAt); err != nil {
			log.Err(err).Str("func", "*historyRepository.List").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return snapshots, nil
}
