package ports

import (
	"context"

	"github.com/fastadmin/blog-api/internal/core/domain"
)

type TagService interface {
	List(ctx context.Context, skip, limit int) ([]domain.Tag, int64, error)
	Get(ctx context.Context, id int64) (*domain.Tag, error)
	Create(ctx context.Context, name string) (*domain.Tag, error)
	Update(ctx context.Context, id int64, name string) (*domain.Tag, error)
	Delete(ctx context.Context, id int64) error
}

type TagRepository interface {
	List(ctx context.Context, skip, limit int) ([]domain.Tag, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Tag, error)
	FindByName(ctx context.Context, name string) (*domain.Tag, error)
	Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	Update(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	Delete(ctx context.Context, id int64) error
}
