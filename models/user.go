package models

import "time"

// User represents an account entity used for authentication and profile data.
// It contains identity attributes and the credential hash.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user,
	// assigned by the database on creation.
	ID int64 `json:"id"`

	// Username is the unique public name of the account.
	Username string `json:"username"`

	// Email is the unique address the user authenticates with.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a one-way salted hash, never plaintext.
	// It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// City is the city the user tracks weather for. Free text,
	// empty until the user picks one.
	City string `json:"city"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// Settings is the per-user presentation settings row, attached by the
	// service layer when a composite user+settings view is returned
	// (e.g. on login). Nil when the caller did not request it.
	Settings *UserSettings `json:"settings,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
