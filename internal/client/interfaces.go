// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/okramarenko/meteostation/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// Gateway defines the presentation layer's access to the data service
// boundary. Implementations are responsible for serialisation, bearer token
// management, decoding the uniform response envelope, and mapping
// transport-level failures to the sentinel values defined in this package.
type Gateway interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the gateway, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account and returns its id. On success the
	// bearer token from the Authorization response header is stored via
	// SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (int64, error)

	// Login authenticates the user and returns the composite user+settings
	// record. On success the bearer token from the Authorization response
	// header is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// City returns the caller's tracked city, empty if none is saved yet.
	City(ctx context.Context) (string, error)

	// UpdateCity overwrites the caller's tracked city.
	UpdateCity(ctx context.Context, city string) error

	// UpdateSettings upserts both settings fields together.
	UpdateSettings(ctx context.Context, req models.UpdateSettingsRequest) error

	// AddReminder creates a reminder and returns its id.
	AddReminder(ctx context.Context, req models.AddReminderRequest) (int64, error)

	// Reminders lists the caller's reminders, optionally filtered by date
	// ("today", "tomorrow" or a concrete "2006-01-02" day).
	Reminders(ctx context.Context, date string) ([]models.Reminder, error)

	// DeleteReminder removes the caller's reminder by id. Deleting an id
	// that no longer exists succeeds.
	DeleteReminder(ctx context.Context, id int64) error

	// SaveHistory saves (or replaces) today's weather snapshot for a city.
	SaveHistory(ctx context.Context, req models.AddHistoryRequest) error

	// History lists stored snapshots, most recent date first, optionally
	// scoped to one city and capped at limit.
	History(ctx context.Context, city string, limit int) ([]models.WeatherSnapshot, error)
}

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}
