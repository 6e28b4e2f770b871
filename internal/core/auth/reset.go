package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/fastadmin/blog-api/internal/core/domain"
	"github.com/fastadmin/blog-api/internal/core/ports"
)

const (
	resetTokenLength = 32
	resetTokenChars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	defaultResetTTL  = 24 * time.Hour
)

// ResetTokenStore issues password-reset tokens and resolves them back to
// users. A token is a 32-character crypto-random alphanumeric string, not
// derived from any user data. Redemption is single-use by contract: the
// caller clears the token pair after the password is actually replaced,
// the store never auto-clears on lookup.
type ResetTokenStore struct {
	ttl time.Duration
}

func NewResetTokenStore(ttl time.Duration) *ResetTokenStore {
	if ttl <= 0 {
		ttl = defaultResetTTL
	}
	return &ResetTokenStore{ttl: ttl}
}

// IssueFor writes a fresh token and expiry onto the user, overwriting any
// prior one (a user has at most one live reset token). The caller persists
// the mutation.
func (s *ResetTokenStore) IssueFor(user *domain.User) (string, error) {
	token, err := randomToken(resetTokenLength)
	if err != nil {
		return "", err
	}

	expires := time.Now().UTC().Add(s.ttl)
	user.ResetToken = &token
	user.ResetTokenExpires = &expires
	return token, nil
}

// Redeem resolves a reset token to its user. An unknown token yields
// domain.ErrInvalidToken; a known token whose expiry is missing or past
// yields domain.ErrTokenExpired.
func (s *ResetTokenStore) Redeem(ctx context.Context, token string, users ports.UserRepository) (*domain.User, error) {
	user, err := users.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("redeem reset token: %w", err)
	}

	if user.ResetTokenExpires == nil || user.ResetTokenExpires.Before(time.Now().UTC()) {
		return nil, domain.ErrTokenExpired
	}
	return user, nil
}

func randomToken(length int) (string, error) {
	buf := make([]byte, length)
	max := big.NewInt(int64(len(resetTokenChars)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate reset token: %w", err)
		}
		buf[i] = resetTokenChars[n.Int64()]
	}
	return string(buf), nil
}
