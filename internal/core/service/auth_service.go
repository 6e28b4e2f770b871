package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fastadmin/blog-api/internal/core/auth"
	"github.com/fastadmin/blog-api/internal/core/domain"
	"github.com/fastadmin/blog-api/internal/core/ports"
)

// ResetThrottle bounds how often reset mail goes out per address (Redis).
// It gates delivery only; the API response is identical either way.
type ResetThrottle interface {
	Allow(ctx context.Context, email string) (bool, error)
}

// AuthService wires the credential-lifecycle components together: hasher,
// policy, token codec, reset-token store, user repository, and the reset
// notifier. It holds no mutable state of its own; every call is an
// independent request-response cycle against the repository.
type AuthService struct {
	users    ports.UserRepository
	hasher   *auth.PasswordHasher
	policy   *auth.PasswordPolicy
	tokens   *auth.TokenCodec
	resets   *auth.ResetTokenStore
	notifier ports.ResetNotifier
	throttle ResetThrottle
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher *auth.PasswordHasher,
	policy *auth.PasswordPolicy,
	tokens *auth.TokenCodec,
	resets *auth.ResetTokenStore,
	notifier ports.ResetNotifier,
	throttle ResetThrottle,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		policy:   policy,
		tokens:   tokens,
		resets:   resets,
		notifier: notifier,
		throttle: throttle,
		log:      log,
	}
}

// Login authenticates by email. A missing account and a wrong password are
// indistinguishable to the caller; a disabled account is only reported
// after the credentials check out.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, domain.ErrAccountDisabled
	}

	token, err := s.tokens.Issue(strconv.FormatInt(user.ID, 10), 0)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}
	return token, user, nil
}

// Register validates the password against the policy, checks username and
// email availability, and creates the account. The returned user carries
// no plaintext and its hash never leaves the process through JSON.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if ok, violations := s.policy.Validate(in.Password); !ok {
		return nil, &domain.WeakPasswordError{Violations: violations}
	}

	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}
	if _, err := s.users.FindByEmail(ctx, strings.ToLower(in.Email)); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        strings.ToLower(in.Email),
		PasswordHash: hash,
		IsActive:     in.IsActive,
		IsAdmin:      in.IsAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		// The repository maps unique violations; a concurrent register can
		// still lose the race after the availability checks above.
		if errors.Is(err, domain.ErrUsernameTaken) || errors.Is(err, domain.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}
	return created, nil
}

// RequestPasswordReset issues a reset token and hands it to the mail
// side-channel. The caller always gets the same generic acknowledgment,
// whether or not the address maps to an account, so the endpoint cannot be
// used to enumerate users. The token itself travels only by mail.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("request password reset: %w", err)
	}

	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx, user.Email)
		if err != nil {
			// Fail open: a throttle outage must not block account recovery.
			s.log.Warn().Err(err).Msg("reset throttle check failed, sending anyway")
		} else if !allowed {
			s.log.Debug().Str("email", user.Email).Msg("reset request throttled")
			return nil
		}
	}

	token, err := s.resets.IssueFor(user)
	if err != nil {
		return fmt.Errorf("request password reset: %w", err)
	}
	user.UpdatedAt = time.Now().UTC()
	if _, err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("request password reset: %w", err)
	}

	s.notifier.SendResetLink(user.Email, token)
	s.log.Info().Int64("user_id", user.ID).Msg("password reset token issued")
	return nil
}

// ConfirmPasswordReset redeems the token, validates the replacement
// password, installs the new hash, and clears the token pair, making the
// token single-use.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	user, err := s.resets.Redeem(ctx, token, s.users)
	if err != nil {
		return err
	}

	if ok, violations := s.policy.Validate(newPassword); !ok {
		return &domain.WeakPasswordError{Violations: violations}
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("confirm password reset: %w", err)
	}

	user.PasswordHash = hash
	user.ResetToken = nil
	user.ResetTokenExpires = nil
	user.UpdatedAt = time.Now().UTC()
	if _, err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("confirm password reset: %w", err)
	}

	s.log.Info().Int64("user_id", user.ID).Msg("password reset completed")
	return nil
}

// ChangePassword replaces the password of an authenticated user after
// verifying the current one. The current-password check happens before the
// policy check, mirroring the order a user can act on the errors.
func (s *AuthService) ChangePassword(ctx context.Context, user *domain.User, current, newPassword string) error {
	if !s.hasher.Verify(current, user.PasswordHash) {
		return domain.ErrWrongCurrentPassword
	}
	if ok, violations := s.policy.Validate(newPassword); !ok {
		return &domain.WeakPasswordError{Violations: violations}
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()
	if _, err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

// ResolveToken verifies a bearer token and loads the user it names.
// A valid signature over a vanished account still resolves to nothing: the
// subject is only trusted as far as the repository confirms it.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	id, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("resolve token: %w", err)
	}
	return user, nil
}
