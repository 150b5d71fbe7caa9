package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/okramarenko/meteostation/internal/config"
	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/internal/utils"
	"github.com/okramarenko/meteostation/models"
)

type openWeatherProvider struct {
	client *utils.HTTPClient

	apiKey string
	units  string

	logger *logger.Logger
}

// NewWeatherProvider constructs an OpenWeatherMap-compatible implementation of
// [WeatherProvider]. It normalises and validates the base URL from
// cfg.BaseURL and configures the underlying HTTP client with the resolved
// base URL.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewWeatherProvider(cfg config.ClientWeather, logger *logger.Logger) (WeatherProvider, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid weather base url: %w", err)
	}

	client.SetBaseURL(baseURL)

	units := cfg.Units
	if units == "" {
		units = "metric"
	}

	return &openWeatherProvider{
		client: client,
		apiKey: cfg.APIKey,
		units:  units,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// owmWeatherResponse mirrors the provider's /weather payload; only the fields
// the application reads are declared.
type owmWeatherResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// owmForecastResponse mirrors the provider's /forecast payload.
type owmForecastResponse struct {
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	} `json:"list"`
}

// CurrentWeather implements [WeatherProvider]. It GETs /weather with the city
// name, API key, units and optional language, and maps the provider payload
// into [models.CurrentWeather].
func (p *openWeatherProvider) CurrentWeather(ctx context.Context, city, lang string) (models.CurrentWeather, error) {
	if strings.TrimSpace(city) == "" {
		return models.CurrentWeather{}, ErrNoCityProvided
	}

	var payload owmWeatherResponse

	resp, err := p.request(ctx, city, lang).
		SetResult(&payload).
		Get("/weather")
	if err != nil {
		return models.CurrentWeather{}, fmt.Errorf("current weather request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CurrentWeather{}, err
	}

	current := models.CurrentWeather{
		City:      payload.Name,
		Temp:      payload.Main.Temp,
		FeelsLike: payload.Main.FeelsLike,
		Humidity:  payload.Main.Humidity,
		Wind:      payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		current.Description = payload.Weather[0].Description
		current.Icon = payload.Weather[0].Icon
	}
	if current.City == "" {
		current.City = city
	}

	return current, nil
}

// Forecast implements [WeatherProvider]. It GETs /forecast and maps each
// 3-hour point of the provider payload into a [models.ForecastEntry].
func (p *openWeatherProvider) Forecast(ctx context.Context, city, lang string) (models.Forecast, error) {
	if strings.TrimSpace(city) == "" {
		return models.Forecast{}, ErrNoCityProvided
	}

	var payload owmForecastResponse

	resp, err := p.request(ctx, city, lang).
		SetResult(&payload).
		Get("/forecast")
	if err != nil {
		return models.Forecast{}, fmt.Errorf("forecast request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Forecast{}, err
	}

	forecast := models.Forecast{City: payload.City.Name}
	if forecast.City == "" {
		forecast.City = city
	}

	for _, point := range payload.List {
		entry := models.ForecastEntry{
			Time: time.Unix(point.Dt, 0),
			Temp: point.Main.Temp,
		}
		if len(point.Weather) > 0 {
			entry.Description = point.Weather[0].Description
			entry.Icon = point.Weather[0].Icon
		}
		forecast.Entries = append(forecast.Entries, entry)
	}

	return forecast, nil
}

func (p *openWeatherProvider) request(ctx context.Context, city, lang string) *resty.Request {
	req := p.client.R().
		SetContext(ctx).
		SetQueryParam("q", city).
		SetQueryParam("appid", p.apiKey).
		SetQueryParam("units", p.units)
	if lang != "" {
		req.SetQueryParam("lang", lang)
	}
	return req
}
