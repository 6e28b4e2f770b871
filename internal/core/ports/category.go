package ports

import (
	"context"

	"github.com/fastadmin/blog-api/internal/core/domain"
)

type CategoryUpdateInput struct {
	Name        *string
	Description *string
}

type CategoryService interface {
	List(ctx context.Context, skip, limit int) ([]domain.Category, int64, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, name string, description *string) (*domain.Category, error)
	Update(ctx context.Context, id int64, in CategoryUpdateInput) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryRepository interface {
	List(ctx context.Context, skip, limit int) ([]domain.Category, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}
