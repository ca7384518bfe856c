package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"content-service/internal/auth"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	m := auth.NewTokenManager("test-secret")

	token, err := m.Sign("admin", "abc123")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("username = %q, want %q", claims.Username, "admin")
	}
	if claims.ID != "abc123" {
		t.Errorf("id = %q, want %q", claims.ID, "abc123")
	}

	got := time.Until(claims.ExpiresAt.Time)
	if got < auth.TokenTTL-time.Minute || got > auth.TokenTTL+time.Minute {
		t.Errorf("expiry %v not about %v out", got, auth.TokenTTL)
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	m := auth.NewTokenManager("test-secret")

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("build expired token: %v", err)
	}

	otherSecret, err := auth.NewTokenManager("other-secret").Sign("admin", "")
	if err != nil {
		t.Fatalf("build foreign token: %v", err)
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, auth.Claims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("build unsigned token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"expired", expired},
		{"wrong secret", otherSecret},
		{"none alg", unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Verify(tt.token); err == nil {
				t.Error("expected verification to fail")
			}
		})
	}
}
