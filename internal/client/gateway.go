package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/okramarenko/meteostation/internal/config"
	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/internal/utils"
	"github.com/okramarenko/meteostation/models"
)

type httpGateway struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPGateway constructs an HTTP/REST implementation of [Gateway]. It
// normalises and validates the base URL from cfg.HTTPAddress and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a valid
// URL.
func NewHTTPGateway(cfg config.ClientGateway, logger *logger.Logger) (Gateway, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpGateway{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
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

// SetToken implements [Gateway]. It stores token (whitespace-trimmed) for use
// in the Authorization header of all subsequent authenticated requests.
func (g *httpGateway) SetToken(token string) {
	g.token = strings.TrimSpace(token)
}

// Token implements [Gateway].
func (g *httpGateway) Token() string {
	return g.token
}

// Register implements [Gateway]. It POSTs the credentials to
// POST /api/auth/register, extracts the bearer token from the Authorization
// response header and stores it via SetToken.
func (g *httpGateway) Register(ctx context.Context, req models.RegisterRequest) (int64, error) {
	var result models.RegisterResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/register")
	if err != nil {
		return 0, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return 0, fmt.Errorf("register parse bearer token: %w", err)
	}

	g.SetToken(token)
	return result.ID, nil
}

// Login implements [Gateway]. It POSTs the credentials to
// POST /api/auth/login, extracts the bearer token from the Authorization
// response header and stores it via SetToken. Returns the composite
// user+settings record.
func (g *httpGateway) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	var result models.LoginResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	g.SetToken(token)

	if result.User == nil {
		return models.User{}, fmt.Errorf("login response: no user in envelope")
	}
	return *result.User, nil
}

// City implements [Gateway].
func (g *httpGateway) City(ctx context.Context) (string, error) {
	var result models.CityResponse

	resp, err := g.authedRequest(ctx).
		SetResult(&result).
		Get("/api/user/city")
	if err != nil {
		return "", fmt.Errorf("get city request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.City, nil
}

// UpdateCity implements [Gateway].
func (g *httpGateway) UpdateCity(ctx context.Context, city string) error {
	resp, err := g.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UpdateCityRequest{City: city}).
		Put("/api/user/city")
	if err != nil {
		return fmt.Errorf("update city request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpdateSettings implements [Gateway].
func (g *httpGateway) UpdateSettings(ctx context.Context, req models.UpdateSettingsRequest) error {
	resp, err := g.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/user/settings")
	if err != nil {
		return fmt.Errorf("update settings request: %w", err)
	}

	return mapHTTPError(resp)
}

// AddReminder implements [Gateway].
func (g *httpGateway) AddReminder(ctx context.Context, req models.AddReminderRequest) (int64, error) {
	var result models.ReminderAddedResponse

	resp, err := g.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/reminders")
	if err != nil {
		return 0, fmt.Errorf("add reminder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.ID, nil
}

// Reminders implements [Gateway].
func (g *httpGateway) Reminders(ctx context.Context, date string) ([]models.Reminder, error) {
	var result models.RemindersResponse

	req := g.authedRequest(ctx).SetResult(&result)
	if date != "" {
		req.SetQueryParam("date", date)
	}

	resp, err := req.Get("/api/reminders")
	if err != nil {
		return nil, fmt.Errorf("list reminders request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Reminders, nil
}

// DeleteReminder implements [Gateway].
func (g *httpGateway) DeleteReminder(ctx context.Context, id int64) error {
	resp, err := g.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/reminders/%d", id))
	if err != nil {
		return fmt.Errorf("delete reminder request: %w", err)
	}

	return mapHTTPError(resp)
}

// SaveHistory implements [Gateway].
func (g *httpGateway) SaveHistory(ctx context.Context, req models.AddHistoryRequest) error {
	resp, err := g.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/history")
	if err != nil {
		return fmt.Errorf("save history request: %w", err)
	}

	return mapHTTPError(resp)
}

// History implements [Gateway].
func (g *httpGateway) History(ctx context.Context, city string, limit int) ([]models.WeatherSnapshot, error) {
	var result models.HistoryResponse

	req := g.authedRequest(ctx).SetResult(&result)
	if city != "" {
		req.SetQueryParam("city", city)
	}
	if limit > 0 {
		req.SetQueryParam("limit", fmt.Sprintf("%d", limit))
	}

	resp, err := req.Get("/api/history")
	if err != nil {
		return nil, fmt.Errorf("list history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.History, nil
}

func (g *httpGateway) authedRequest(ctx context.Context) *resty.Request {
	return g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+g.token)
}
