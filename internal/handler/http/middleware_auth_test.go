package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okramarenko/meteostation/internal/service"
	"github.com/okramarenko/meteostation/models"
)

func TestAuthMiddleware_NoHeader(t *testing.T) {
	h := newTestHandler(nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/user/city", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.Response
	decodeEnvelope(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, ErrEmptyAuthorizationHeader.Error(), resp.Message)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newTestHandler(nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/user/city", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(auth, nil, nil, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/user/city", "", "expired-token")

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.Response
	decodeEnvelope(t, rec, &resp)
	assert.Equal(t, service.ErrTokenIsExpiredOrInvalid.Error(), resp.Message)
}

func TestAuthMiddleware_PropagatesUserID(t *testing.T) {
	var gotUserID int64
	auth := &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{UserID: 42}, nil
		},
		cityFn: func(ctx context.Context, userID int64) (string, error) {
			gotUserID = userID
			return "Kyiv", nil
		},
	}
	h := newTestHandler(auth, nil, nil, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/user/city", "", "valid-token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotUserID)
}

func TestTraceIDMiddleware_SetsHeader(t *testing.T) {
	h := newTestHandler(nil, nil, nil, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/user/city", "", "valid-token")

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestTraceIDMiddleware_EchoesIncomingID(t *testing.T) {
	h := newTestHandler(nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/user/city", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}
