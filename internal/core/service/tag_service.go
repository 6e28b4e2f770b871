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

type TagService struct {
	tags ports.TagRepository
	log  zerolog.Logger
}

func NewTagService(tags ports.TagRepository, log zerolog.Logger) *TagService {
	return &TagService{tags: tags, log: log}
}

func (s *TagService) List(ctx context.Context, skip, limit int) ([]domain.Tag, int64, error) {
	return s.tags.List(ctx, skip, limit)
}

func (s *TagService) Get(ctx context.Context, id int64) (*domain.Tag, error) {
	return s.tags.FindByID(ctx, id)
}

func (s *TagService) Create(ctx context.Context, name string) (*domain.Tag, error) {
	if _, err := s.tags.FindByName(ctx, name); err == nil {
		return nil, domain.ErrTagExists
	} else if !errors.Is(err, domain.ErrTagNotFound) {
		return nil, fmt.Errorf("create tag: %w", err)
	}

	created, err := s.tags.Create(ctx, &domain.Tag{Name: name, CreatedAt: time.Now().UTC()})
	if err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	s.log.Info().Int64("tag_id", created.ID).Str("name", name).Msg("tag created")
	return created, nil
}

func (s *TagService) Update(ctx context.Context, id int64, name string) (*domain.Tag, error) {
	tag, err := s.tags.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != tag.Name {
		if _, err := s.tags.FindByName(ctx, name); err == nil {
			return nil, domain.ErrTagExists
		} else if !errors.Is(err, domain.ErrTagNotFound) {
			return nil, fmt.Errorf("update tag: %w", err)
		}
		tag.Name = name
	}

	updated, err := s.tags.Update(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("update tag: %w", err)
	}
	return updated, nil
}

func (s *TagService) Delete(ctx context.Context, id int64) error {
	return s.tags.Delete(ctx, id)
}
