package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fastadmin/blog-api/internal/core/domain"
	"github.com/fastadmin/blog-api/internal/core/ports"
)

func TestCategoryService_CreateDuplicateName(t *testing.T) {
	repo := &memCategoryRepo{categories: map[int64]*domain.Category{}}
	svc := NewCategoryService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), "tutorials", nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "tutorials", nil); !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}

func TestCategoryService_UpdateRename(t *testing.T) {
	repo := &memCategoryRepo{categories: map[int64]*domain.Category{}}
	svc := NewCategoryService(repo, zerolog.Nop())

	first, _ := svc.Create(context.Background(), "tutorials", nil)
	svc.Create(context.Background(), "news", nil)

	taken := "news"
	if _, err := svc.Update(context.Background(), first.ID, ports.CategoryUpdateInput{Name: &taken}); !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}

	// Keeping the current name is not a collision.
	same := "tutorials"
	desc := "long form walkthroughs"
	updated, err := svc.Update(context.Background(), first.ID, ports.CategoryUpdateInput{Name: &same, Description: &desc})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Description == nil || *updated.Description != desc {
		t.Fatalf("description not applied: %+v", updated)
	}
}

func TestTagService_CreateDuplicateName(t *testing.T) {
	repo := &memTagRepo{tags: map[int64]*domain.Tag{}}
	svc := NewTagService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), "go"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "go"); !errors.Is(err, domain.ErrTagExists) {
		t.Fatalf("expected ErrTagExists, got %v", err)
	}
}

func TestCommentService_CreateRequiresPost(t *testing.T) {
	comments := &memCommentRepo{comments: map[int64]*domain.Comment{}}
	posts := newMemPostRepo()
	svc := NewCommentService(comments, posts, zerolog.Nop())

	if _, err := svc.Create(context.Background(), 42, "hello", 1); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}

	post, _ := posts.Create(context.Background(), &domain.Post{Title: "t"}, nil)
	created, err := svc.Create(context.Background(), post.ID, "hello", 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.PostID != post.ID || created.AuthorID != 1 {
		t.Fatalf("comment fields wrong: %+v", created)
	}
}

type memCommentRepo struct {
	seq      int64
	comments map[int64]*domain.Comment
}

func (r *memCommentRepo) List(_ context.Context, _, _ int, postID *int64) ([]domain.Comment, int64, error) {
	out := []domain.Comment{}
	for _, c := range r.comments {
		if postID == nil || c.PostID == *postID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memCommentRepo) FindByID(_ context.Context, id int64) (*domain.Comment, error) {
	if c, ok := r.comments[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCommentNotFound
}

func (r *memCommentRepo) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	r.seq++
	c.ID = r.seq
	r.comments[c.ID] = c
	return c, nil
}

func (r *memCommentRepo) Update(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	r.comments[c.ID] = c
	return c, nil
}

func (r *memCommentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}
