package models

import "time"

// WeatherData is one weather observation as supplied by the presentation
// layer when saving a history snapshot. Field names follow the public
// weather API the client consumes.
type WeatherData struct {
	Temp        float64 `json:"temp"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	Wind        float64 `json:"wind"`
}

// WeatherSnapshot is a persisted weather observation scoped to
// (user, city, date). At most one snapshot exists per key: saving again on
// the same calendar day replaces the previous row in full.
type WeatherSnapshot struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"-"`
	City   string `json:"city"`

	// Date is the calendar day the snapshot belongs to, "2006-01-02",
	// computed from local wall-clock time at save time.
	Date string `json:"date"`

	Temp        float64   `json:"temp"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Humidity    int       `json:"humidity"`
	Wind        float64   `json:"wind"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the WeatherSnapshot model.
func (w WeatherSnapshot) TableName() string {
	return "weather_history"
}

// SnapshotDateFormat is the layout used for snapshot and reminder dates.
const SnapshotDateFormat = "2006-01-02"

// SnapshotDate returns t's calendar date in the snapshot key format.
func SnapshotDate(t time.Time) string {
	return t.Format(SnapshotDateFormat)
}

// CurrentWeather is the decoded current-conditions report for a city as
// returned by the weather provider.
type CurrentWeather struct {
	City        string  `json:"city"`
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feels_like"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	Wind        float64 `json:"wind"`
}

// Data converts the report into the observation shape stored in history.
func (c CurrentWeather) Data() WeatherData {
	return WeatherData{
		Temp:        c.Temp,
		Description: c.Description,
		Icon:        c.Icon,
		Humidity:    c.Humidity,
		Wind:        c.Wind,
	}
}

// ForecastEntry is a single forecast point (the provider reports one every
// three hours over five days).
type ForecastEntry struct {
	Time        time.Time `json:"time"`
	Temp        float64   `json:"temp"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// Forecast is the decoded multi-day forecast for a city.
type Forecast struct {
	City    string          `json:"city"`
	Entries []ForecastEntry `json:"entries"`
}
