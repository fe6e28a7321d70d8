// Package auth issues and verifies session tokens and guards huma operations
// that declare bearer security.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthorized covers a missing, malformed, expired or forged token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrEmptySecret is returned by an issuer built without a signing key.
var ErrEmptySecret = errors.New("token secret is empty")

// TokenIssuer signs HS256 tokens whose subject is the owner id.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock returns a copy of the issuer that reads the time from now.
func (t *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	copied := *t
	copied.now = now
	return &copied
}

// Issue returns a signed token for ownerID and its expiry.
func (t *TokenIssuer) Issue(ownerID uuid.UUID) (string, time.Time, error) {
	if len(t.secret) == 0 {
		return "", time.Time{}, ErrEmptySecret
	}
	issuedAt := t.now()
	expiresAt := issuedAt.Add(t.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   ownerID.String(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks the signature and expiry and returns the owner id.
// Every failure wraps ErrUnauthorized.
func (t *TokenIssuer) Verify(tokenString string) (uuid.UUID, error) {
	if len(t.secret) == 0 {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrUnauthorized, ErrEmptySecret)
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	ownerID, err := uuid.FromString(claims.Subject)
	if err != nil || ownerID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: invalid subject", ErrUnauthorized)
	}
	return ownerID, nil
}
