package service

import (
	"context"

	"github.com/okramarenko/meteostation/models"
)

// AuthService handles account lifecycle, credential verification, session
// tokens and the user's selected city.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	City(ctx context.Context, userID int64) (string, error)
	UpdateCity(ctx context.Context, userID int64, city string) error
}

// SettingsService reads and updates per-user presentation settings.
type SettingsService interface {
	Settings(ctx context.Context, userID int64) (models.UserSettings, error)
	UpdateSettings(ctx context.Context, settings models.UserSettings) error
}

// ReminderService manages per-user reminders. Reminders are immutable once
// created.
type ReminderService interface {
	AddReminder(ctx context.Context, userID int64, req models.AddReminderRequest) (models.Reminder, error)
	Reminders(ctx context.Context, userID int64, dateFilter string) ([]models.Reminder, error)
	DeleteReminder(ctx context.Context, userID int64, reminderID int64) error
}

// HistoryService manages daily weather snapshots.
type HistoryService interface {
	SaveSnapshot(ctx context.Context, userID int64, req models.AddHistoryRequest) (models.WeatherSnapshot, error)
	History(ctx context.Context, userID int64, city string, limit int) ([]models.WeatherSnapshot, error)
}
