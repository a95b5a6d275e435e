// Package auth issues and verifies access tokens and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"frankit/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// TokenProvider signs and verifies HS256 access tokens whose subject is the user's email.
type TokenProvider struct {
	key        []byte
	expiration time.Duration
	now        func() time.Time
}

// NewTokenProvider creates a provider signing with key. Tokens expire after expiration.
func NewTokenProvider(key []byte, expiration time.Duration) *TokenProvider {
	return &TokenProvider{
		key:        key,
		expiration: expiration,
		now:        time.Now,
	}
}

// CreateToken issues a signed token for email.
func (p *TokenProvider) CreateToken(email string) (string, error) {
	now := p.now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.expiration)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies token and returns its subject.
//
// Failures map to ErrTokenExpired, ErrInvalidJWTSignature or ErrInvalidToken.
func (p *TokenProvider) ParseToken(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return p.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", model.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenMalformed):
		return "", model.ErrInvalidJWTSignature
	default:
		return "", model.ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", model.ErrInvalidToken
	}
	return claims.Subject, nil
}
