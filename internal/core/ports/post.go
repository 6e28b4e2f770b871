package ports

import (
	"context"

	"github.com/fastadmin/blog-api/internal/core/domain"
)

// PostListFilter narrows a post listing. Nil filters are ignored.
type PostListFilter struct {
	Skip       int
	Limit      int
	Search     *string
	CategoryID *int64
	TagID      *int64
	Published  *bool
}

type PostCreateInput struct {
	Title           string
	ContentMarkdown string
	Summary         *string
	Published       bool
	CategoryID      *int64
	TagIDs          []int64
}

// PostUpdateInput is a partial update; a nil TagIDs leaves the tag set
// alone, a non-nil one replaces it wholesale.
type PostUpdateInput struct {
	Title           *string
	ContentMarkdown *string
	Summary         *string
	Published       *bool
	CategoryID      *int64
	TagIDs          *[]int64
}

type PostService interface {
	List(ctx context.Context, f PostListFilter) ([]domain.Post, int64, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	Create(ctx context.Context, in PostCreateInput, authorID int64) (*domain.Post, error)
	Update(ctx context.Context, id int64, in PostUpdateInput) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
}

type PostRepository interface {
	List(ctx context.Context, f PostListFilter) ([]domain.Post, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	Create(ctx context.Context, post *domain.Post, tagIDs []int64) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post, tagIDs *[]int64) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
}
