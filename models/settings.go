package models

// Defaults applied when a user has no stored settings row.
const (
	DefaultTheme    = "default"
	DefaultLanguage = "ua"
)

// UserSettings holds per-user presentation preferences. Exactly zero or one
// row exists per user; an absent row means the defaults above.
//
// Theme and Language are always written together: partial updates are not
// supported by the settings contract.
type UserSettings struct {
	UserID   int64  `json:"-"`
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// DefaultSettings returns the settings applied to a user that has never
// saved any, keyed to the given user id.
func DefaultSettings(userID int64) UserSettings {
	return UserSettings{
		UserID:   userID,
		Theme:    DefaultTheme,
		Language: DefaultLanguage,
	}
}

// TableName returns the name of the database table
// associated with the UserSettings model.
func (s UserSettings) TableName() string {
	return "user_settings"
}
