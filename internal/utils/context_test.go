package utils

import (
	"context"
	"testing"
)

func TestGetUserIDFromContext_Present(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		t.Fatal("expected user id to be present")
	}
	if userID != 42 {
		t.Errorf("expected 42, got %d", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	if ok {
		t.Fatal("expected missing user id")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")

	_, ok := GetUserIDFromContext(ctx)
	if ok {
		t.Fatal("expected type mismatch to report missing")
	}
}
