package ports

import (
	"context"

	"github.com/fastadmin/blog-api/internal/core/domain"
)

type CommentService interface {
	List(ctx context.Context, skip, limit int, postID *int64) ([]domain.Comment, int64, error)
	Get(ctx context.Context, id int64) (*domain.Comment, error)
	Create(ctx context.Context, postID int64, content string, authorID int64) (*domain.Comment, error)
	Update(ctx context.Context, id int64, content string) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type CommentRepository interface {
	List(ctx context.Context, skip, limit int, postID *int64) ([]domain.Comment, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}
