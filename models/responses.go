package models

// Response is the uniform boundary envelope. Every operation answers either
// {"success":true, ...} with operation data, or {"success":false,
// "message": <human-readable cause>}. The presentation layer depends on
// this shape only; no internal error type ever crosses the boundary.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK is the bare success envelope for operations with no payload.
func OK() Response {
	return Response{Success: true}
}

// Fail builds a failure envelope with the given user-facing message.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// RegisterResponse returns the id of the newly created account.
type RegisterResponse struct {
	Response
	ID int64 `json:"id,omitempty"`
}

// LoginResponse returns the composite user+settings view.
type LoginResponse struct {
	Response
	User *User `json:"user,omitempty"`
}

// CityResponse returns the caller's tracked city.
type CityResponse struct {
	Response
	City string `json:"city"`
}

// ReminderAddedResponse returns the id of the created reminder.
type ReminderAddedResponse struct {
	Response
	ID int64 `json:"id,omitempty"`
}

// RemindersResponse returns the caller's reminders, newest first.
type RemindersResponse struct {
	Response
	Reminders []Reminder `json:"reminders"`
}

// HistoryResponse returns stored weather snapshots, most recent date first.
type HistoryResponse struct {
	Response
	History []WeatherSnapshot `json:"history"`
}
