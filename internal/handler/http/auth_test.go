package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okramarenko/meteostation/internal/service"
	"github.com/okramarenko/meteostation/internal/store"
	"github.com/okramarenko/meteostation/models"
)

func doRequest(t *testing.T, h *Handler, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(ctx context.Context, req models.RegisterRequest) (models.User, error) {
			return models.User{ID: 1, Username: req.Username, Email: req.Email}, nil
		},
	}
	h := newTestHandler(auth, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/api/auth/register",
		`{"username":"olena","email":"olena@example.com","password":"s3cret"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer test-token", rec.Header().Get("Authorization"))

	var resp models.RegisterResponse
	decodeEnvelope(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(1), resp.ID)
}

func TestRegister_DuplicateAccount(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(ctx context.Context, req models.RegisterRequest) (models.User, error) {
			return models.User{}, store.ErrUserAlreadyExists
		},
	}
	h := newTestHandler(auth, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/api/auth/register",
		`{"username":"olena","email":"olena@example.com","password":"s3cret"}`, "")

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp models.Response
	decodeEnvelope(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, store.ErrUserAlreadyExists.Error(), resp.Message)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(nil, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/api/auth/register", `{"username":`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.Response
	decodeEnvelope(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, req models.LoginRequest) (models.User, error) {
			settings := models.UserSettings{UserID: 1, Theme: "dark", Language: "en"}
			return models.User{ID: 1, Username: "olena", Email: req.Email, City: "Kyiv", Settings: &settings}, nil
		},
	}
	h := newTestHandler(auth, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/api/auth/login",
		`{"email":"olena@example.com","password":"s3cret"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer test-token", rec.Header().Get("Authorization"))

	var resp models.LoginResponse
	decodeEnvelope(t, rec, &resp)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Kyiv", resp.User.City)
	require.NotNil(t, resp.User.Settings)
	assert.Equal(t, "dark", resp.User.Settings.Theme)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidLoginPassword
		},
	}
	h := newTestHandler(auth, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/api/auth/login",
		`{"email":"olena@example.com","password":"wrong"}`, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.Response
	decodeEnvelope(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, service.ErrInvalidLoginPassword.Error(), resp.Message)
}

// An unknown email and a wrong password must produce byte-identical failures,
// so a caller cannot tell whether an account exists.
func TestLogin_CredentialFailuresIndistinguishable(t *testing.T) {
	login := func(loginFn func(ctx context.Context, req models.LoginRequest) (models.User, error), body string) *httptest.ResponseRecorder {
		h := newTestHandler(&mockAuthService{loginFn: loginFn}, nil, nil, nil)
		return doRequest(t, h, http.MethodPost, "/api/auth/login", body, "")
	}

	unknownEmail := login(func(ctx context.Context, req models.LoginRequest) (models.User, error) {
		return models.User{}, service.ErrInvalidLoginPassword
	}, `{"email":"ghost@example.com","password":"pw"}`)

	wrongPassword := login(func(ctx context.Context, req models.LoginRequest) (models.User, error) {
		return models.User{}, fmt.Errorf("password verification: %w", service.ErrInvalidLoginPassword)
	}, `{"email":"olena@example.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, unknownEmail.Code, wrongPassword.Code)
	assert.Equal(t, unknownEmail.Body.String(), wrongPassword.Body.String())
}

func TestLogin_StorageFailureMasked(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{}, store.ErrExecutingQuery
		},
	}
	h := newTestHandler(auth, nil, nil, nil)

	rec := doRequest(t, h, http.MethodPost, "/api/auth/login",
		`{"email":"olena@example.com","password":"pw"}`, "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp models.Response
	decodeEnvelope(t, rec, &resp)
	assert.False(t, resp.Success)
	// storage details must not leak through the boundary
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), resp.Message)
}
