package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	tok, err := svc.GenerateAccessToken(userID, "dev@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := svc.ValidateAccessToken(tok)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user id = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "dev@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("token type = %q, want %q", claims.TokenType, TokenTypeAccess)
	}
}

func TestRefreshTokenDoesNotValidateAsAccess(t *testing.T) {
	svc := newTestService()

	tok, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	if _, err := svc.ValidateAccessToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateAccessToken(refresh token) error = %v, want ErrTokenInvalid", err)
	}
	if _, err := svc.ValidateRefreshToken(tok); err != nil {
		t.Errorf("ValidateRefreshToken: %v", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := newTestService()

	base := time.Now()
	svc.now = func() time.Time { return base.Add(-time.Hour) }
	tok, err := svc.GenerateAccessToken(uuid.New(), "dev@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateAccessToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("error = %v, want ErrTokenExpired", err)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	svc := newTestService()

	if _, err := svc.ValidateAccessToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("error = %v, want ErrTokenInvalid", err)
	}
}

func TestTamperedSecretRejected(t *testing.T) {
	svc := newTestService()
	other := NewHMACService("different-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)

	tok, err := svc.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := other.ValidateAccessToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("error = %v, want ErrTokenInvalid", err)
	}
}
