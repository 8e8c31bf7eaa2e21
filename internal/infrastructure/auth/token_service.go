package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims carries the authenticated back-office username.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the HS256 tokens that gate the
// back-office routes. Credentials and the signing secret come from the
// environment; this is a single-operator tool, not a user system.
type TokenService struct {
	secret   []byte
	username string
	password string
	ttl      time.Duration
}

func NewTokenService() *TokenService {
	return &TokenService{
		secret:   []byte(getenvDefault("JWT_SECRET", "dev-secret-change-me")),
		username: getenvDefault("ADMIN_USERNAME", "admin"),
		password: getenvDefault("ADMIN_PASSWORD", "admin"),
		ttl:      24 * time.Hour,
	}
}

// Login checks the configured credentials and issues a token.
func (s *TokenService) Login(username, password string) (string, time.Time, error) {
	if username != s.username || password != s.password {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)

	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Validate parses a bearer token and returns its claims.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
