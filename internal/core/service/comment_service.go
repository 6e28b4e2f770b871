package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fastadmin/blog-api/internal/core/domain"
	"github.com/fastadmin/blog-api/internal/core/ports"
)

type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	log      zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, posts ports.PostRepository, log zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, posts: posts, log: log}
}

func (s *CommentService) List(ctx context.Context, skip, limit int, postID *int64) ([]domain.Comment, int64, error) {
	return s.comments.List(ctx, skip, limit, postID)
}

func (s *CommentService) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	return s.comments.FindByID(ctx, id)
}

func (s *CommentService) Create(ctx context.Context, postID int64, content string, authorID int64) (*domain.Comment, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.comments.Create(ctx, &domain.Comment{
		Content:   content,
		AuthorID:  authorID,
		PostID:    postID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	s.log.Info().Int64("comment_id", created.ID).Int64("post_id", postID).Msg("comment created")
	return created, nil
}

func (s *CommentService) Update(ctx context.Context, id int64, content string) (*domain.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	comment.UpdatedAt = time.Now().UTC()
	updated, err := s.comments.Update(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return updated, nil
}

func (s *CommentService) Delete(ctx context.Context, id int64) error {
	return s.comments.Delete(ctx, id)
}
