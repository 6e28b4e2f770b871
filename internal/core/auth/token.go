package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fastadmin/blog-api/internal/core/domain"
)

const defaultAccessTokenTTL = 30 * time.Minute

// TokenCodec issues and verifies signed, self-contained bearer tokens.
// Tokens are HS256 JWTs carrying the subject (user id) and an expiry;
// the symmetric secret comes from process configuration and is read-only
// after startup.
type TokenCodec struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewTokenCodec(secret, issuer string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultAccessTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// DefaultTTL returns the configured issuance lifetime.
func (c *TokenCodec) DefaultTTL() time.Duration {
	return c.ttl
}

// Issue signs a token for the given subject. A non-positive ttl falls back
// to the configured default.
func (c *TokenCodec) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = c.ttl
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    c.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, structure, and expiry, and returns the subject.
// Any failure (wrong signature, malformed token, unexpected algorithm, or
// expiry in the past) yields domain.ErrInvalidToken; no claim of an
// unverified token is ever trusted.
func (c *TokenCodec) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", domain.ErrInvalidToken
	}
	return subject, nil
}
