// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okramarenko/meteostation/internal/config"
	"github.com/okramarenko/meteostation/internal/logger"
	"github.com/okramarenko/meteostation/models"
)

func newTestGateway(t *testing.T, serverURL string) *httpGateway {
	t.Helper()
	cfg := config.ClientGateway{HTTPAddress: serverURL}

	g, err := NewHTTPGateway(cfg, logger.Nop())
	require.NoError(t, err)
	return g.(*httpGateway)
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "olena", req.Username)

		w.Header().Set("Authorization", "Bearer session-token")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.RegisterResponse{Response: models.OK(), ID: 1})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	id, err := g.Register(context.Background(), models.RegisterRequest{
		Username: "olena", Email: "olena@example.com", Password: "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "session-token", g.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(models.Fail("user already exists"))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.Register(context.Background(), models.RegisterRequest{Username: "olena"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "user already exists")
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	settings := models.UserSettings{UserID: 1, Theme: "dark", Language: "en"}
	user := models.User{ID: 1, Username: "olena", Email: "olena@example.com", City: "Kyiv", Settings: &settings}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		w.Header().Set("Authorization", "Bearer session-token")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.LoginResponse{Response: models.OK(), User: &user})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	got, err := g.Login(context.Background(), models.LoginRequest{Email: user.Email, Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, "Kyiv", got.City)
	require.NotNil(t, got.Settings)
	assert.Equal(t, "dark", got.Settings.Theme)
	assert.Equal(t, "session-token", g.Token())
}

func TestLogin_WrongCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.Fail("invalid login/password"))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.Login(context.Background(), models.LoginRequest{Email: "olena@example.com", Password: "nope"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── City ────────────────────────────────────────────────────────────────────

func TestCity_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(models.CityResponse{Response: models.OK(), City: "Kyiv"})
		case http.MethodPut:
			var req models.UpdateCityRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Odesa", req.City)
			_ = json.NewEncoder(w).Encode(models.OK())
		}
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	g.SetToken("session-token")

	city, err := g.City(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Kyiv", city)

	require.NoError(t, g.UpdateCity(context.Background(), "Odesa"))
}

// ── Reminders ───────────────────────────────────────────────────────────────

func TestReminders_ListWithDateFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tomorrow", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.RemindersResponse{
			Response:  models.OK(),
			Reminders: []models.Reminder{{ID: 1, City: "Kyiv", Text: "take an umbrella", Date: "2026-08-30"}},
		})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	g.SetToken("session-token")

	got, err := g.Reminders(context.Background(), "tomorrow")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "take an umbrella", got[0].Text)
}

func TestDeleteReminder_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/reminders/7", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.OK())
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	g.SetToken("session-token")

	require.NoError(t, g.DeleteReminder(context.Background(), 7))
}

// ── History ─────────────────────────────────────────────────────────────────

func TestSaveHistory_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/history", r.URL.Path)

		var req models.AddHistoryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Kyiv", req.City)
		assert.Equal(t, 21.5, req.Weather.Temp)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.OK())
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	g.SetToken("session-token")

	err := g.SaveHistory(context.Background(), models.AddHistoryRequest{
		City:    "Kyiv",
		Weather: models.WeatherData{Temp: 21.5, Description: "clear sky", Icon: "01d", Humidity: 40, Wind: 3.2},
	})
	require.NoError(t, err)
}

func TestHistory_PassesFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Lviv", r.URL.Query().Get("city"))
		assert.Equal(t, "30", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.HistoryResponse{
			Response: models.OK(),
			History:  []models.WeatherSnapshot{{ID: 1, City: "Lviv", Date: "2026-08-29"}},
		})
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	g.SetToken("session-token")

	got, err := g.History(context.Background(), "Lviv", 30)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Lviv", got[0].City)
}

func TestHistory_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.Fail("token is expired or invalid"))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	_, err := g.History(context.Background(), "", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNewHTTPGateway_EmptyAddress(t *testing.T) {
	_, err := NewHTTPGateway(config.ClientGateway{}, logger.Nop())
	require.Error(t, err)
}
