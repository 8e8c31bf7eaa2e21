package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenService_LoginAndValidate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_USERNAME", "boss")
	t.Setenv("ADMIN_PASSWORD", "movers123")

	s := NewTokenService()

	t.Run("bad credentials", func(t *testing.T) {
		if _, _, err := s.Login("boss", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
		if _, _, err := s.Login("intruder", "movers123"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		token, expiresAt, err := s.Login("boss", "movers123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" {
			t.Fatal("expected a token")
		}
		if !expiresAt.After(time.Now()) {
			t.Fatalf("expiry not in the future: %v", expiresAt)
		}

		claims, err := s.Validate(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.Username != "boss" {
			t.Fatalf("expected username boss, got %q", claims.Username)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := s.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := s.Login("boss", "movers123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		other := &TokenService{secret: []byte("other-secret")}
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
