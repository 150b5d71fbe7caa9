package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/models"
)

func newTestHistoryService(repo *mockHistoryRepository) *historyService {
	if repo == nil {
		repo = &mockHistoryRepository{}
	}
	svc := NewHistoryService(repo, logger.Nop()).(*historyService)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 29, 15, 0, 0, 0, time.Local)
	}
	return svc
}

func TestSaveSnapshot_StampsToday(t *testing.T) {
	var gotSnapshot models.WeatherSnapshot
	repo := &mockHistoryRepository{
		upsertFn: func(ctx context.Context, snapshot models.WeatherSnapshot) (models.WeatherSnapshot, error) {
			gotSnapshot = snapshot
			snapshot.ID = 3
			return snapshot, nil
		},
	}
	svc := newTestHistoryService(repo)

	saved, err := svc.SaveSnapshot(context.Background(), 1, models.AddHistoryRequest{
		City: "Kyiv",
		Weather: models.WeatherData{
			Temp:        21.5,
			Description: "clear sky",
			Icon:        "01d",
			Humidity:    40,
			Wind:        3.2,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), saved.ID)
	assert.Equal(t, "2026-08-29", gotSnapshot.Date)
	assert.Equal(t, 21.5, gotSnapshot.Temp)
	assert.Equal(t, int64(1), gotSnapshot.UserID)
}

func TestSaveSnapshot_EmptyCity(t *testing.T) {
	svc := newTestHistoryService(nil)

	_, err := svc.SaveSnapshot(context.Background(), 1, models.AddHistoryRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSaveSnapshot_RepositoryError(t *testing.T) {
	repo := &mockHistoryRepository{
		upsertFn: func(ctx context.Context, snapshot models.WeatherSnapshot) (models.WeatherSnapshot, error) {
			return models.WeatherSnapshot{}, errors.New("db failure")
		},
	}
	svc := newTestHistoryService(repo)

	_, err := svc.SaveSnapshot(context.Background(), 1, models.AddHistoryRequest{City: "Kyiv"})
	require.Error(t, err)
}

func TestHistory_PassesFilters(t *testing.T) {
	var gotCity string
	var gotLimit int
	repo := &mockHistoryRepository{
		listFn: func(ctx context.Context, userID int64, city string, limit int) ([]models.WeatherSnapshot, error) {
			gotCity, gotLimit = city, limit
			return []models.WeatherSnapshot{{ID: 1, UserID: userID}}, nil
		},
	}
	svc := newTestHistoryService(repo)

	snapshots, err := svc.History(context.Background(), 1, "Lviv", 5)

	require.NoError(t, err)
	assert.Len(t, snapshots, 1)
	assert.Equal(t, "Lviv", gotCity)
	assert.Equal(t, 5, gotLimit)
}

func TestHistory_RepositoryError(t *testing.T) {
	repo := &mockHistoryRepository{
		listFn: func(ctx context.Context, userID int64, city string, limit int) ([]models.WeatherSnapshot, error) {
			return nil, errors.New("db failure")
		},
	}
	svc := newTestHistoryService(repo)

	_, err := svc.History(context.Background(), 1, "", 0)
	require.Error(t, err)
}
