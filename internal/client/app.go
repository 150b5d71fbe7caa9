package client

import (
	"context"
	"errors"

	"github.com/okramarenko/meteostation/internal/adapter"
	"github.com/okramarenko/meteostation/internal/config"
	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/internal/tui"
	"github.com/okramarenko/meteostation/internal/workers"
	"github.com/okramarenko/meteostation/models"
)

// App wires the terminal UI, gateway, weather provider and background
// workers into one runnable presentation process.
type App struct {
	gateway Gateway
	weather adapter.WeatherProvider
	ui      *tui.TUI

	workersCfg config.ClientWorkers

	logger *logger.Logger
}

func NewApp(gateway Gateway, weather adapter.WeatherProvider, ui *tui.TUI, workersCfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if gateway == nil || weather == nil || ui == nil {
		return nil, errors.New("nil application dependency")
	}

	return &App{
		gateway:    gateway,
		weather:    weather,
		ui:         ui,
		workersCfg: workersCfg,
		logger:     logger,
	}, nil
}

// Run implements [Client]. It drives the sign-in flow, starts the snapshot
// worker for the signed-in session, and runs the main screens until the user
// quits. A logout tears the session down and restarts the flow.
func (a *App) Run() error {
	ctx := context.Background()

	user, err := a.ui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	a.logger.Info().Int64("user_id", user.ID).Msg("user signed in")

	lang := models.DefaultLanguage
	if user.Settings != nil && user.Settings.Language != "" {
		lang = user.Settings.Language
	}

	// the worker lives only as long as the signed-in session
	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()

	ws := workers.NewWorkers(
		workers.NewSnapshotWorker(workerCtx, a.gateway, a.weather, a.workersCfg.SnapshotInterval, lang, a.logger),
	)
	ws.Run()

	logout, err := a.ui.MainLoop(ctx, user)
	if err != nil {
		return err
	}
	if logout {
		stopWorkers()
		a.gateway.SetToken("")
		return a.Run()
	}

	return nil
}
