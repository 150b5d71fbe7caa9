package utils

import (
	"strings"
	"testing"
	"time"
)

const (
	testIssuer  = "meteostation"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.SignedString == "" {
		t.Fatal("expected non-empty signed string")
	}
	if parts := strings.Split(token.SignedString, "."); len(parts) != 3 {
		t.Errorf("expected compact JWS with 3 segments, got %d", len(parts))
	}
	if token.UserID != 42 {
		t.Errorf("expected UserID 42, got %d", token.UserID)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, duration: 0, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 42, tt.duration, tt.signKey)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.UserID != 42 {
		t.Errorf("expected UserID 42, got %d", parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = ValidateAndParseJWTToken(issued.SignedString, "another-key", testIssuer)
	if err == nil {
		t.Fatal("expected signature verification to fail")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("someone-else", 42, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	if err == nil {
		t.Fatal("expected issuer check to fail")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, 42, -time.Minute, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	if err == nil {
		t.Fatal("expected expiry check to fail")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing token", header: "Bearer ", wantErr: true},
		{name: "no scheme", header: "abc.def.ghi", wantErr: true},
		{name: "empty header", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
