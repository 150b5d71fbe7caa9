package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/internal/mock"
	"github.com/okramarenko/meteostation/models"
)

func newTestSnapshotWorker(t *testing.T) (*SnapshotWorker, *mock.MockGateway, *mock.MockWeatherProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gateway := mock.NewMockGateway(ctrl)
	weather := mock.NewMockWeatherProvider(ctrl)
	w := NewSnapshotWorker(context.Background(), gateway, weather, time.Hour, "ua", logger.Nop())

	return w, gateway, weather
}

func TestSnapshotWorker_Refresh_SavesSnapshot(t *testing.T) {
	w, gateway, weather := newTestSnapshotWorker(t)

	current := models.CurrentWeather{
		City:        "Kyiv",
		Temp:        21.5,
		Description: "clear sky",
		Icon:        "01d",
		Humidity:    40,
		Wind:        3.2,
	}

	gateway.EXPECT().City(gomock.Any()).Return("Kyiv", nil)
	weather.EXPECT().CurrentWeather(gomock.Any(), "Kyiv", "ua").Return(current, nil)
	gateway.EXPECT().
		SaveHistory(gomock.Any(), models.AddHistoryRequest{City: "Kyiv", Weather: current.Data()}).
		Return(nil)

	require.NoError(t, w.refresh(context.Background()))
}

func TestSnapshotWorker_Refresh_NoSavedCity(t *testing.T) {
	w, gateway, _ := newTestSnapshotWorker(t)

	gateway.EXPECT().City(gomock.Any()).Return("", nil)

	// no weather fetch and no save for users without a tracked city
	require.NoError(t, w.refresh(context.Background()))
}

func TestSnapshotWorker_Refresh_CityLookupFails(t *testing.T) {
	w, gateway, _ := newTestSnapshotWorker(t)

	wantErr := errors.New("boundary unreachable")
	gateway.EXPECT().City(gomock.Any()).Return("", wantErr)

	err := w.refresh(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestSnapshotWorker_Refresh_WeatherFetchFails(t *testing.T) {
	w, gateway, weather := newTestSnapshotWorker(t)

	wantErr := errors.New("provider down")
	gateway.EXPECT().City(gomock.Any()).Return("Kyiv", nil)
	weather.EXPECT().CurrentWeather(gomock.Any(), "Kyiv", "ua").Return(models.CurrentWeather{}, wantErr)

	err := w.refresh(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestSnapshotWorker_Run_DisabledWithoutInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockGateway(ctrl)
	weather := mock.NewMockWeatherProvider(ctrl)

	w := NewSnapshotWorker(context.Background(), gateway, weather, 0, "", logger.Nop())

	// no expectations set: a disabled worker must never touch its deps
	w.Run()
}

func TestSnapshotWorker_Run_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockGateway(ctrl)
	weather := mock.NewMockWeatherProvider(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	w := NewSnapshotWorker(ctx, gateway, weather, time.Hour, "", logger.Nop())

	w.Run()
	cancel()

	// give the loop goroutine a moment to observe cancellation
	time.Sleep(10 * time.Millisecond)
}
