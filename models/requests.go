package models

// Boundary request payloads. These are the only shapes the presentation
// layer may send; every field maps one-to-one onto a repository call
// parameter.

// RegisterRequest carries the credentials for a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries the credentials for an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateCityRequest overwrites the caller's tracked city.
type UpdateCityRequest struct {
	City string `json:"city"`
}

// UpdateSettingsRequest upserts both settings fields together.
type UpdateSettingsRequest struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// AddReminderRequest creates a reminder for the caller.
type AddReminderRequest struct {
	City string `json:"city"`
	Text string `json:"text"`
	Date string `json:"date"`
}

// AddHistoryRequest saves (or replaces) today's weather snapshot for the
// caller and the given city.
type AddHistoryRequest struct {
	City    string      `json:"city"`
	Weather WeatherData `json:"weather"`
}
