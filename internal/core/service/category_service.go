package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fastadmin/blog-api/internal/core/domain"
	"github.com/fastadmin/blog-api/internal/core/ports"
)

type CategoryService struct {
	categories ports.CategoryRepository
	log        zerolog.Logger
}

func NewCategoryService(categories ports.CategoryRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, log: log}
}

func (s *CategoryService) List(ctx context.Context, skip, limit int) ([]domain.Category, int64, error) {
	return s.categories.List(ctx, skip, limit)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, name string, description *string) (*domain.Category, error) {
	if _, err := s.categories.FindByName(ctx, name); err == nil {
		return nil, domain.ErrCategoryExists
	} else if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, fmt.Errorf("create category: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.categories.Create(ctx, &domain.Category{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	s.log.Info().Int64("category_id", created.ID).Str("name", name).Msg("category created")
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, in ports.CategoryUpdateInput) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != category.Name {
		if _, err := s.categories.FindByName(ctx, *in.Name); err == nil {
			return nil, domain.ErrCategoryExists
		} else if !errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, fmt.Errorf("update category: %w", err)
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = in.Description
	}

	category.UpdatedAt = time.Now().UTC()
	updated, err := s.categories.Update(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.categories.Delete(ctx, id)
}
