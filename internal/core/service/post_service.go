package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/russross/blackfriday/v2"

	"github.com/fastadmin/blog-api/internal/core/domain"
	"github.com/fastadmin/blog-api/internal/core/ports"
)

// PostService renders markdown to HTML on every write so reads never pay
// for rendering. The stored HTML is regenerated whenever the markdown
// changes.
type PostService struct {
	posts      ports.PostRepository
	categories ports.CategoryRepository
	tags       ports.TagRepository
	log        zerolog.Logger
}

func NewPostService(posts ports.PostRepository, categories ports.CategoryRepository, tags ports.TagRepository, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, categories: categories, tags: tags, log: log}
}

func renderMarkdown(md string) string {
	return string(blackfriday.Run([]byte(md)))
}

func (s *PostService) List(ctx context.Context, f ports.PostListFilter) ([]domain.Post, int64, error) {
	return s.posts.List(ctx, f)
}

func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) Create(ctx context.Context, in ports.PostCreateInput, authorID int64) (*domain.Post, error) {
	if in.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
	}
	if err := s.checkTags(ctx, in.TagIDs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Title:           in.Title,
		ContentMarkdown: in.ContentMarkdown,
		ContentHTML:     renderMarkdown(in.ContentMarkdown),
		Summary:         in.Summary,
		Published:       in.Published,
		AuthorID:        authorID,
		CategoryID:      in.CategoryID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.posts.Create(ctx, post, in.TagIDs)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	s.log.Info().Int64("post_id", created.ID).Int64("author_id", authorID).Msg("post created")
	return created, nil
}

func (s *PostService) Update(ctx context.Context, id int64, in ports.PostUpdateInput) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.ContentMarkdown != nil {
		post.ContentMarkdown = *in.ContentMarkdown
		post.ContentHTML = renderMarkdown(*in.ContentMarkdown)
	}
	if in.Summary != nil {
		post.Summary = in.Summary
	}
	if in.Published != nil {
		post.Published = *in.Published
	}
	if in.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		post.CategoryID = in.CategoryID
	}
	if in.TagIDs != nil {
		if err := s.checkTags(ctx, *in.TagIDs); err != nil {
			return nil, err
		}
	}

	post.UpdatedAt = time.Now().UTC()
	updated, err := s.posts.Update(ctx, post, in.TagIDs)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	s.log.Info().Int64("post_id", id).Msg("post updated")
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, id int64) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("post_id", id).Msg("post deleted")
	return nil
}

func (s *PostService) checkTags(ctx context.Context, tagIDs []int64) error {
	for _, id := range tagIDs {
		if _, err := s.tags.FindByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
