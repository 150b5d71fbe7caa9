// Package tui implements the terminal user interface of the weather
// companion: authentication flow, the home weather screen, reminders,
// history and settings.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okramarenko/meteostation/models"
)

// ErrUserQuit reports that the user closed the program from the UI.
var ErrUserQuit = errors.New("user quit")

// Gateway is the slice of the data service boundary the UI consumes.
// It is satisfied by the client package's HTTP gateway.
type Gateway interface {
	Register(ctx context.Context, req models.RegisterRequest) (int64, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	City(ctx context.Context) (string, error)
	UpdateCity(ctx context.Context, city string) error
	UpdateSettings(ctx context.Context, req models.UpdateSettingsRequest) error
	AddReminder(ctx context.Context, req models.AddReminderRequest) (int64, error)
	Reminders(ctx context.Context, date string) ([]models.Reminder, error)
	DeleteReminder(ctx context.Context, id int64) error
	SaveHistory(ctx context.Context, req models.AddHistoryRequest) error
	History(ctx context.Context, city string, limit int) ([]models.WeatherSnapshot, error)
}

// WeatherProvider is the slice of the weather API the UI consumes.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city, lang string) (models.CurrentWeather, error)
	Forecast(ctx context.Context, city, lang string) (models.Forecast, error)
}

// TUI owns the two interactive flows of the presentation process.
type TUI struct {
	gateway Gateway
	weather WeatherProvider
}

func New(gateway Gateway, weather WeatherProvider) *TUI {
	return &TUI{gateway: gateway, weather: weather}
}

// LoginFlow runs the authentication screens (menu, login, register) and
// returns the authenticated user. Returns [ErrUserQuit] when the user closes
// the program instead of signing in.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.gateway),
		"register": NewRegisterModel(ctx, t.gateway),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	return result.resultUser, nil
}

// MainLoop runs the signed-in screens (home, city, reminders, history,
// settings) until the user quits or logs out.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.gateway, t.weather, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
