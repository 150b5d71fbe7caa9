package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okramarenko/meteostation/internal/service"
	"github.com/okramarenko/meteostation/models"
)

func TestCity_Success(t *testing.T) {
	auth := &mockAuthService{
		cityFn: func(ctx context.Context, userID int64) (string, error) {
			return "Kyiv", nil
		},
	}
	h := newTestHandler(auth, nil, nil, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/user/city", "", "valid-token")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CityResponse
	decodeEnvelope(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "Kyiv", resp.City)
}

func TestCity_EmptyWhenUnset(t *testing.T) {
	h := newTestHandler(nil, nil, nil, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/user/city", "", "valid-token")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CityResponse
	decodeEnvelope(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.City)
}

func TestUpdateCity_Success(t *testing.T) {
	var gotUserID int64
	var gotCity string
	auth := &mockAuthService{
		updateCityFn: func(ctx context.Context, userID int64, city string) error {
			gotUserID, gotCity = userID, city
			return nil
		},
	}
	h := newTestHandler(auth, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPut, "/api/user/city", `{"city":"Odesa"}`, "valid-token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), gotUserID)
	assert.Equal(t, "Odesa", gotCity)

	var resp models.Response
	decodeEnvelope(t, rec, &resp)
	assert.True(t, resp.Success)
}

func TestUpdateCity_EmptyCity(t *testing.T) {
	auth := &mockAuthService{
		updateCityFn: func(ctx context.Context, userID int64, city string) error {
			return service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(auth, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPut, "/api/user/city", `{"city":""}`, "valid-token")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.Response
	decodeEnvelope(t, rec, &resp)
	assert.False(t, resp.Success)
}

func TestUpdateSettings_Success(t *testing.T) {
	var gotSettings models.UserSettings
	settings := &mockSettingsService{
		updateSettingsFn: func(ctx context.Context, s models.UserSettings) error {
			gotSettings = s
			return nil
		},
	}
	h := newTestHandler(nil, settings, nil, nil)

	rec := doRequest(t, h, http.MethodPut, "/api/user/settings",
		`{"theme":"dark","language":"en"}`, "valid-token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), gotSettings.UserID)
	assert.Equal(t, "dark", gotSettings.Theme)
	assert.Equal(t, "en", gotSettings.Language)
}

func TestUpdateSettings_InvalidJSON(t *testing.T) {
	h := newTestHandler(nil, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPut, "/api/user/settings", `{`, "valid-token")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
