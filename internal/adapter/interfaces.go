// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the client's access to the public weather API.
//
// The primary abstraction is [WeatherProvider], which decouples the
// presentation layer from the provider's wire format. The package ships an
// OpenWeatherMap-compatible HTTP implementation ([NewWeatherProvider]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for provider-agnostic error
// handling (e.g. [ErrCityNotFound] for 404).
package adapter

import (
	"context"

	"github.com/okramarenko/meteostation/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/weather_provider_mock.go -package=mock

// WeatherProvider defines read access to the external weather API.
// Implementations are responsible for serialisation, request signing and
// mapping transport-level errors to the sentinel values defined in this
// package.
type WeatherProvider interface {
	// CurrentWeather fetches the current conditions for the named city.
	// lang selects the language of textual descriptions; an empty lang
	// falls back to the provider default.
	CurrentWeather(ctx context.Context, city, lang string) (models.CurrentWeather, error)

	// Forecast fetches the 5-day/3-hour forecast for the named city.
	Forecast(ctx context.Context, city, lang string) (models.Forecast, error)
}
