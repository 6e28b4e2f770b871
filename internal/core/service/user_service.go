package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fastadmin/blog-api/internal/core/auth"
	"github.com/fastadmin/blog-api/internal/core/domain"
	"github.com/fastadmin/blog-api/internal/core/ports"
)

// UserService covers the admin-facing account management surface. Password
// changes that go through here are still policy checked and hashed, the
// same path self-service changes take.
type UserService struct {
	users  ports.UserRepository
	hasher *auth.PasswordHasher
	policy *auth.PasswordPolicy
	log    zerolog.Logger
}

func NewUserService(users ports.UserRepository, hasher *auth.PasswordHasher, policy *auth.PasswordPolicy, log zerolog.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, policy: policy, log: log}
}

func (s *UserService) List(ctx context.Context, skip, limit int) ([]domain.User, int64, error) {
	return s.users.List(ctx, skip, limit)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update applies only the fields the caller set. Nil pointers leave the
// stored value alone, so a partial payload cannot blank out a field.
func (s *UserService) Update(ctx context.Context, id int64, in ports.UserUpdateInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Username != nil && *in.Username != user.Username {
		if _, err := s.users.FindByUsername(ctx, *in.Username); err == nil {
			return nil, domain.ErrUsernameTaken
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("update user: %w", err)
		}
		user.Username = *in.Username
	}
	if in.Email != nil {
		email := strings.ToLower(*in.Email)
		if email != user.Email {
			if _, err := s.users.FindByEmail(ctx, email); err == nil {
				return nil, domain.ErrEmailTaken
			} else if !errors.Is(err, domain.ErrUserNotFound) {
				return nil, fmt.Errorf("update user: %w", err)
			}
			user.Email = email
		}
	}
	if in.Password != nil {
		if ok, violations := s.policy.Validate(*in.Password); !ok {
			return nil, &domain.WeakPasswordError{Violations: violations}
		}
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
		user.PasswordHash = hash
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.IsAdmin != nil {
		user.IsAdmin = *in.IsAdmin
	}

	user.UpdatedAt = time.Now().UTC()
	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	s.log.Info().Int64("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
