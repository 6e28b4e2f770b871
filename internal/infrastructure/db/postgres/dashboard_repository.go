package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastadmin/blog-api/internal/core/domain"
)

// DashboardRepository aggregates the admin landing page numbers straight
// from the tables on every call.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

func (r *DashboardRepository) Summary(ctx context.Context, recentLimit int) (*domain.DashboardSummary, error) {
	var s domain.DashboardSummary
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM posts),
			(SELECT count(*) FROM categories),
			(SELECT count(*) FROM tags),
			(SELECT count(*) FROM comments),
			(SELECT count(*) FROM users)`,
	).Scan(&s.TotalPosts, &s.TotalCategories, &s.TotalTags, &s.TotalComments, &s.TotalUsers)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}

	postRows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts p ORDER BY p.created_at DESC LIMIT $1`, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent posts: %w", err)
	}
	defer postRows.Close()
	for postRows.Next() {
		p, err := scanPost(postRows)
		if err != nil {
			return nil, err
		}
		s.RecentPosts = append(s.RecentPosts, *p)
	}
	if err := postRows.Err(); err != nil {
		return nil, fmt.Errorf("recent posts: %w", err)
	}

	commentRows, err := r.pool.Query(ctx, `
		SELECT id, content, author_id, post_id, created_at, updated_at
		FROM comments ORDER BY created_at DESC LIMIT $1`, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent comments: %w", err)
	}
	defer commentRows.Close()
	for commentRows.Next() {
		c, err := scanComment(commentRows)
		if err != nil {
			return nil, err
		}
		s.RecentComments = append(s.RecentComments, *c)
	}
	if err := commentRows.Err(); err != nil {
		return nil, fmt.Errorf("recent comments: %w", err)
	}

	return &s, nil
}
