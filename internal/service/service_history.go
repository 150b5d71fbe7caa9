package service

import (
	"context"
	"fmt"
	"time"

	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/internal/store"
	"github.com/okramarenko/meteostation/models"
)

// historyService is the concrete implementation of HistoryService.
type historyService struct {
	historyRepository store.HistoryRepository
	logger            *logger.Logger

	// now is stubbed in tests to pin the snapshot date.
	now func() time.Time
}

// NewHistoryService constructs a HistoryService wired to the given
// repository.
func NewHistoryService(historyRepository store.HistoryRepository, logger *logger.Logger) HistoryService {
	return &historyService{
		historyRepository: historyRepository,
		logger:            logger,
		now:               time.Now,
	}
}

// SaveSnapshot stores today's weather for the given city. The snapshot date
// is always the local wall-clock day; saving twice on the same day
// overwrites the earlier values, so a user keeps at most one snapshot per
// city per day.
//
// Returns ErrInvalidDataProvided when the city is empty.
func (s *historyService) SaveSnapshot(ctx context.Context, userID int64, req models.AddHistoryRequest) (models.WeatherSnapshot, error) {
	log := logger.FromContext(ctx)

	if req.City == "" {
		log.Error().Int64("id", userID).Msg("empty city for weather snapshot")
		return models.WeatherSnapshot{}, ErrInvalidDataProvided
	}

	snapshot, err := s.historyRepository.Upsert(ctx, models.WeatherSnapshot{
		UserID:      userID,
		City:        req.City,
		Date:        models.SnapshotDate(s.now()),
		Temp:        req.Weather.Temp,
		Description: req.Weather.Description,
		Icon:        req.Weather.Icon,
		Humidity:    req.Weather.Humidity,
		Wind:        req.Weather.Wind,
	})
	if err != nil {
		log.Err(err).Int64("id", userID).Str("city", req.City).Msg("snapshot save failed")
		return models.WeatherSnapshot{}, fmt.Errorf("snapshot save failed: %w", err)
	}

	return snapshot, nil
}

// History lists the user's saved snapshots, newest first. A non-empty city
// narrows the result; a non-positive limit falls back to the repository
// default.
func (s *historyService) History(ctx context.Context, userID int64, city string, limit int) ([]models.WeatherSnapshot, error) {
	log := logger.FromContext(ctx)

	snapshots, err := s.historyRepository.List(ctx, userID, city, limit)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("history listing failed")
		return nil, fmt.Errorf("history listing failed: %w", err)
	}

	return snapshots, nil
}
