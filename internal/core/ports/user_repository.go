package ports

import (
	"context"

	"github.com/fastadmin/blog-api/internal/core/domain"
)

// UserRepository defines user persistence. Uniqueness of username and
// email is enforced by storage constraints; violations surface as
// domain.ErrUsernameTaken / domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByResetToken(ctx context.Context, token string) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]domain.User, int64, error)
}
