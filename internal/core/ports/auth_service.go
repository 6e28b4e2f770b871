package ports

import (
	"context"

	"github.com/fastadmin/blog-api/internal/core/domain"
)

// RegisterInput carries a registration request into the auth service.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	IsActive bool
	IsAdmin  bool
}

// AuthService orchestrates login, registration, the password-reset
// lifecycle, password changes, and token-to-user resolution.
type AuthService interface {
	// Login authenticates by email and returns a bearer token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Register validates the password against the policy, enforces
	// username/email uniqueness, and creates the account.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// RequestPasswordReset always succeeds with a generic acknowledgment,
	// whether or not the email maps to an account.
	RequestPasswordReset(ctx context.Context, email string) error
	// ConfirmPasswordReset redeems a reset token and installs the new
	// password, clearing the token pair.
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
	// ChangePassword replaces the password after verifying the current one.
	ChangePassword(ctx context.Context, user *domain.User, current, newPassword string) error
	// ResolveToken verifies a bearer token and loads its user. Any failure,
	// bad token or vanished account, yields domain.ErrInvalidToken.
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
}
