package tui

import (
	"github.com/okramarenko/meteostation/models"
)

// NavigateTo switches the root router to another page. Payload, when set, is
// re-dispatched to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult finishes the authentication flow on success.
type LoginResult struct {
	User models.User
	Err  error
}

// RegisterResult reports the outcome of a registration attempt.
type RegisterResult struct {
	Username string
	Err      error
}

// RegisterSuccessNotice is shown on the menu after a completed registration.
type RegisterSuccessNotice struct {
	Username string
}

type weatherLoadedMsg struct {
	city     string
	current  models.CurrentWeather
	forecast models.Forecast
	err      error
}

type citySavedMsg struct {
	city string
	err  error
}

type remindersLoadedMsg struct {
	reminders []models.Reminder
	err       error
}

type reminderAddedMsg struct {
	err error
}

type reminderDeletedMsg struct {
	err error
}

type historyLoadedMsg struct {
	history []models.WeatherSnapshot
	err     error
}

type settingsSavedMsg struct {
	theme    string
	language string
	err      error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
