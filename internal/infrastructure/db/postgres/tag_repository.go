package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastadmin/blog-api/internal/core/domain"
)

type TagRepository struct {
	pool *pgxpool.Pool
}

func NewTagRepository(pool *pgxpool.Pool) *TagRepository {
	return &TagRepository{pool: pool}
}

func scanTag(row pgx.Row) (*domain.Tag, error) {
	var t domain.Tag
	err := row.Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, fmt.Errorf("scan tag: %w", err)
	}
	return &t, nil
}

func mapTagConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return domain.ErrTagExists
	}
	return err
}

func (r *TagRepository) List(ctx context.Context, skip, limit int) ([]domain.Tag, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM tags`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tags: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at FROM tags ORDER BY name LIMIT $1 OFFSET $2`, limit, skip)
	if err != nil {
		return nil, 0, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	tags := make([]domain.Tag, 0, limit)
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, 0, err
		}
		tags = append(tags, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list tags: %w", err)
	}
	return tags, total, nil
}

func (r *TagRepository) FindByID(ctx context.Context, id int64) (*domain.Tag, error) {
	return scanTag(r.pool.QueryRow(ctx,
		`SELECT id, name, created_at FROM tags WHERE id = $1`, id))
}

func (r *TagRepository) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	return scanTag(r.pool.QueryRow(ctx,
		`SELECT id, name, created_at FROM tags WHERE name = $1`, name))
}

func (r *TagRepository) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO tags (name, created_at) VALUES ($1, $2) RETURNING id`,
		tag.Name, tag.CreatedAt,
	).Scan(&tag.ID)
	if err != nil {
		return nil, mapTagConstraint(err)
	}
	return tag, nil
}

func (r *TagRepository) Update(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	ct, err := r.pool.Exec(ctx, `UPDATE tags SET name = $1 WHERE id = $2`, tag.Name, tag.ID)
	if err != nil {
		return nil, mapTagConstraint(err)
	}
	if ct.RowsAffected() == 0 {
		return nil, domain.ErrTagNotFound
	}
	return tag, nil
}

func (r *TagRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}
