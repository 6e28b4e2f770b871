package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fastadmin/blog-api/internal/core/domain"
)

type stubUserRepo struct {
	byToken map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) { return u, nil }
func (r *stubUserRepo) Update(_ context.Context, u *domain.User) (*domain.User, error) { return u, nil }
func (r *stubUserRepo) Delete(_ context.Context, _ int64) error                        { return nil }
func (r *stubUserRepo) FindByID(_ context.Context, _ int64) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubUserRepo) FindByUsername(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubUserRepo) FindByResetToken(_ context.Context, token string) (*domain.User, error) {
	if u, ok := r.byToken[token]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}
func (r *stubUserRepo) List(_ context.Context, _, _ int) ([]domain.User, int64, error) {
	return nil, 0, nil
}

func TestResetTokenStore_IssueFor(t *testing.T) {
	s := NewResetTokenStore(24 * time.Hour)
	user := &domain.User{ID: 1, Email: "alice@example.com"}

	token, err := s.IssueFor(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if len(token) != resetTokenLength {
		t.Fatalf("expected %d-character token, got %d", resetTokenLength, len(token))
	}
	if user.ResetToken == nil || *user.ResetToken != token {
		t.Fatalf("token not written onto user")
	}
	if user.ResetTokenExpires == nil {
		t.Fatalf("expiry not written onto user")
	}
	remaining := time.Until(*user.ResetTokenExpires)
	if remaining < 23*time.Hour || remaining > 24*time.Hour {
		t.Fatalf("unexpected expiry window: %v", remaining)
	}

	// A second issue overwrites the first: at most one live token.
	second, err := s.IssueFor(user)
	if err != nil {
		t.Fatalf("second issue: %v", err)
	}
	if second == token {
		t.Fatalf("expected a fresh random token")
	}
	if *user.ResetToken != second {
		t.Fatalf("prior token not overwritten")
	}
}

func TestResetTokenStore_RedeemValid(t *testing.T) {
	s := NewResetTokenStore(24 * time.Hour)
	user := &domain.User{ID: 1, Email: "alice@example.com"}
	token, err := s.IssueFor(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	repo := &stubUserRepo{byToken: map[string]*domain.User{token: user}}

	got, err := s.Redeem(context.Background(), token, repo)
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("redeemed wrong user: %d", got.ID)
	}
}

func TestResetTokenStore_RedeemUnknownToken(t *testing.T) {
	s := NewResetTokenStore(24 * time.Hour)
	repo := &stubUserRepo{byToken: map[string]*domain.User{}}

	if _, err := s.Redeem(context.Background(), "nope", repo); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestResetTokenStore_RedeemExpired(t *testing.T) {
	s := NewResetTokenStore(24 * time.Hour)
	token := "expiredexpiredexpiredexpiredexpi"
	past := time.Now().UTC().Add(-time.Hour) // simulates >24h elapsed
	user := &domain.User{ID: 2, ResetToken: &token, ResetTokenExpires: &past}
	repo := &stubUserRepo{byToken: map[string]*domain.User{token: user}}

	if _, err := s.Redeem(context.Background(), token, repo); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestResetTokenStore_RedeemMissingExpiry(t *testing.T) {
	s := NewResetTokenStore(24 * time.Hour)
	token := "noexpirynoexpirynoexpirynoexpiry"
	user := &domain.User{ID: 3, ResetToken: &token}
	repo := &stubUserRepo{byToken: map[string]*domain.User{token: user}}

	if _, err := s.Redeem(context.Background(), token, repo); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}
