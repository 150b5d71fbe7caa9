package models

import "time"

// Reminder is a day-scoped note attached to a user and a city.
// Reminders are immutable after creation; deletion is the only removal path.
type Reminder struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"-"`
	City   string `json:"city"`
	Text   string `json:"text"`

	// Date is the target calendar date in "2006-01-02" form.
	Date string `json:"date"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Reminder model.
func (r Reminder) TableName() string {
	return "reminders"
}
