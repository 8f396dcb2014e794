package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestService(t *testing.T) *TokenService {
	t.Helper()
	ts, err := NewTokenService([]byte("test-secret"), time.Hour, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return ts
}

func TestNewTokenServiceEmptySecret(t *testing.T) {
	if _, err := NewTokenService(nil, time.Hour, time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	ts := newTestService(t)

	token, err := ts.IssueAccessToken("user-123", "restaurant")
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	claims, err := ts.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Errorf("subject = %q, want %q", claims.Subject, "user-123")
	}
	if claims.Role != "restaurant" {
		t.Errorf("role = %q, want %q", claims.Role, "restaurant")
	}
}

func TestRefreshTokenCarriesNoRole(t *testing.T) {
	ts := newTestService(t)

	token, err := ts.IssueRefreshToken("user-123")
	if err != nil {
		t.Fatalf("IssueRefreshToken: %v", err)
	}

	claims, err := ts.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Role != "" {
		t.Errorf("refresh token role = %q, want empty", claims.Role)
	}
	if RoleAllowed(claims.Role, "admin", "restaurant", "user") {
		t.Error("refresh token must not satisfy any role requirement")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	ts := newTestService(t)

	issued := time.Now()
	ts.now = func() time.Time { return issued }
	token, err := ts.IssueAccessToken("user-123", "user")
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	// still valid just before expiry
	ts.now = func() time.Time { return issued.Add(59 * time.Minute) }
	if _, err := ts.Verify(token); err != nil {
		t.Fatalf("token should be valid before expiry: %v", err)
	}

	// rejected after expiry
	ts.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := ts.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	ts := newTestService(t)

	token, err := ts.IssueAccessToken("user-123", "admin")
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	// flip the last character of the signature
	last := token[len(token)-1]
	flip := byte('A')
	if last == 'A' {
		flip = 'B'
	}
	tampered := token[:len(token)-1] + string(flip)

	if _, err := ts.Verify(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	ts := newTestService(t)
	other, err := NewTokenService([]byte("other-secret"), time.Hour, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	token, err := ts.IssueAccessToken("user-123", "user")
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}
	if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken under a different secret, got %v", err)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	ts := newTestService(t)
	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ts.Verify(bad); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q) = %v, want ErrInvalidToken", bad, err)
		}
	}
}
