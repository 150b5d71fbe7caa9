package store

import (
	"context"

	"github.com/okramarenko/meteostation/models"
)

// UserRepository persists user accounts and the per-user selected city.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	GetCity(ctx context.Context, userID int64) (string, error)
	UpdateCity(ctx context.Context, userID int64, city string) error
}

// SettingsRepository persists per-user presentation settings.
type SettingsRepository interface {
	Get(ctx context.Context, userID int64) (models.UserSettings, error)
	Upsert(ctx context.Context, settings models.UserSettings) error
}

// ReminderRepository persists user reminders.
type ReminderRepository interface {
	Add(ctx context.Context, reminder models.Reminder) (models.Reminder, error)
	List(ctx context.Context, userID int64, date string) ([]models.Reminder, error)
	Delete(ctx context.Context, userID int64, reminderID int64) error
}

// HistoryRepository persists daily weather snapshots, at most one per
// (user, city, date).
type HistoryRepository interface {
	Upsert(ctx context.Context, snapshot models.WeatherSnapshot) (models.WeatherSnapshot, error)
	List(ctx context.Context, userID int64, city string, limit int) ([]models.WeatherSnapshot, error)
}
