// Package auth issues and verifies the admin session token. There is a
// single admin identity, so tokens are locally signed with HS256 rather than
// verified against an external identity provider.
package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bimsite/internal/domain"
)

const adminSubject = "admin"

// TokenManager signs and verifies admin session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	logger *slog.Logger
}

// NewTokenManager creates a token manager. The secret must be non-empty.
func NewTokenManager(secret string, ttl time.Duration, logger *slog.Logger) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
	}, nil
}

// Issue creates a signed admin token valid for the configured TTL.
func (m *TokenManager) Issue() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a token string. Any failure maps to ErrUnauthorized so
// callers never leak parse details to clients.
func (m *TokenManager) Verify(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		// Reject anything but HS256 to prevent algorithm confusion.
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil {
		m.logger.Debug("token verification failed", "error", err.Error())
		return domain.ErrUnauthorized
	}
	if !token.Valid {
		return domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != adminSubject {
		return domain.ErrUnauthorized
	}
	return nil
}
