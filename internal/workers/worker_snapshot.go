// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"time"

	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/models"
)

// HistoryGateway is the slice of the data service boundary the snapshot
// worker consumes. The client package's HTTP gateway satisfies it.
type HistoryGateway interface {
	City(ctx context.Context) (string, error)
	SaveHistory(ctx context.Context, req models.AddHistoryRequest) error
}

// WeatherSource is the slice of the weather API the snapshot worker
// consumes.
type WeatherSource interface {
	CurrentWeather(ctx context.Context, city, lang string) (models.CurrentWeather, error)
}

// SnapshotWorker periodically refreshes the weather for the user's saved city
// and stores today's observation through the history boundary. Saving twice
// on the same day replaces the earlier row, so the worker keeps at most one
// snapshot per (city, day).
type SnapshotWorker struct {
	ctx context.Context

	gateway HistoryGateway
	weather WeatherSource

	interval time.Duration
	lang     string

	logger *logger.Logger
}

// NewSnapshotWorker builds a snapshot worker bound to ctx. The worker stops
// when ctx is cancelled. A non-positive interval disables the worker.
func NewSnapshotWorker(ctx context.Context, gateway HistoryGateway, weather WeatherSource, interval time.Duration, lang string, logger *logger.Logger) *SnapshotWorker {
	return &SnapshotWorker{
		ctx:      ctx,
		gateway:  gateway,
		weather:  weather,
		interval: interval,
		lang:     lang,
		logger:   logger,
	}
}

// Run implements [Worker]. It spawns the refresh loop and returns
// immediately.
func (w *SnapshotWorker) Run() {
	if w.interval <= 0 {
		w.logger.Debug().Str("func", "SnapshotWorker.Run").Msg("snapshot worker disabled")
		return
	}

	go w.loop()
}

func (w *SnapshotWorker) loop() {
	log := w.logger.With().Str("func", "SnapshotWorker.loop").Logger()
	log.Debug().Dur("interval", w.interval).Msg("snapshot worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			log.Debug().Msg("snapshot worker stopped")
			return
		case <-ticker.C:
			if err := w.refresh(w.ctx); err != nil {
				log.Warn().Err(err).Msg("snapshot refresh failed")
			}
		}
	}
}

// refresh performs one fetch-and-save cycle. A user without a saved city is
// not an error; the cycle is simply skipped.
func (w *SnapshotWorker) refresh(ctx context.Context) error {
	city, err := w.gateway.City(ctx)
	if err != nil {
		return err
	}
	if city == "" {
		return nil
	}

	current, err := w.weather.CurrentWeather(ctx, city, w.lang)
	if err != nil {
		return err
	}

	return w.gateway.SaveHistory(ctx, models.AddHistoryRequest{
		City:    city,
		Weather: current.Data(),
	})
}
