package ports

import (
	"context"

	"github.com/fastadmin/blog-api/internal/core/domain"
)

// UserUpdateInput models a partial user update. Nil fields are left
// untouched; presence is checked directly rather than by convention.
type UserUpdateInput struct {
	Username *string
	Email    *string
	Password *string
	IsActive *bool
	IsAdmin  *bool
}

type UserService interface {
	List(ctx context.Context, skip, limit int) ([]domain.User, int64, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, in UserUpdateInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
