package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastadmin/blog-api/internal/core/domain"
	"github.com/fastadmin/blog-api/internal/core/ports"
)

const postColumns = `p.id, p.title, p.content_markdown, p.content_html, p.summary,
	p.published, p.author_id, p.category_id, p.created_at, p.updated_at`

// PostRepository persists posts and their tag links. Tag links live in
// post_tags and are replaced inside the same transaction as the post row,
// so a post never carries a half-written tag set.
type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.ContentMarkdown, &p.ContentHTML, &p.Summary,
		&p.Published, &p.AuthorID, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("scan post: %w", err)
	}
	return &p, nil
}

func (r *PostRepository) List(ctx context.Context, f ports.PostListFilter) ([]domain.Post, int64, error) {
	where := []string{}
	args := []any{}

	if f.Search != nil && *f.Search != "" {
		args = append(args, "%"+*f.Search+"%")
		where = append(where, fmt.Sprintf("(p.title ILIKE $%d OR p.content_markdown ILIKE $%d)", len(args), len(args)))
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		where = append(where, fmt.Sprintf("p.category_id = $%d", len(args)))
	}
	if f.Published != nil {
		args = append(args, *f.Published)
		where = append(where, fmt.Sprintf("p.published = $%d", len(args)))
	}
	if f.TagID != nil {
		args = append(args, *f.TagID)
		where = append(where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM post_tags pt WHERE pt.post_id = p.id AND pt.tag_id = $%d)", len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM posts p`+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	args = append(args, f.Limit, f.Skip)
	query := fmt.Sprintf(`SELECT `+postColumns+` FROM posts p%s ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d`,
		clause, len(args)-1, len(args))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0, f.Limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}

	for i := range posts {
		tags, err := r.loadTags(ctx, posts[i].ID)
		if err != nil {
			return nil, 0, err
		}
		posts[i].Tags = tags
	}
	return posts, total, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := scanPost(r.pool.QueryRow(ctx,
		`SELECT `+postColumns+` FROM posts p WHERE p.id = $1`, id))
	if err != nil {
		return nil, err
	}
	post.Tags, err = r.loadTags(ctx, id)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post, tagIDs []int64) (*domain.Post, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO posts (title, content_markdown, content_html, summary, published,
			author_id, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		post.Title, post.ContentMarkdown, post.ContentHTML, post.Summary, post.Published,
		post.AuthorID, post.CategoryID, post.CreatedAt, post.UpdatedAt,
	).Scan(&post.ID)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	if err := insertTagLinks(ctx, tx, post.ID, tagIDs); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	post.Tags, err = r.loadTags(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (r *PostRepository) Update(ctx context.Context, post *domain.Post, tagIDs *[]int64) (*domain.Post, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE posts
		SET title = $1, content_markdown = $2, content_html = $3, summary = $4,
			published = $5, category_id = $6, updated_at = $7
		WHERE id = $8`,
		post.Title, post.ContentMarkdown, post.ContentHTML, post.Summary,
		post.Published, post.CategoryID, post.UpdatedAt, post.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrPostNotFound
	}

	if tagIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM post_tags WHERE post_id = $1`, post.ID); err != nil {
			return nil, fmt.Errorf("update post tags: %w", err)
		}
		if err := insertTagLinks(ctx, tx, post.ID, *tagIDs); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	post.Tags, err = r.loadTags(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func insertTagLinks(ctx context.Context, tx pgx.Tx, postID int64, tagIDs []int64) error {
	for _, tagID := range tagIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			postID, tagID); err != nil {
			return fmt.Errorf("link tag %d: %w", tagID, err)
		}
	}
	return nil
}

func (r *PostRepository) loadTags(ctx context.Context, postID int64) ([]domain.Tag, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.name, t.created_at
		FROM tags t
		JOIN post_tags pt ON pt.tag_id = t.id
		WHERE pt.post_id = $1
		ORDER BY t.name`, postID)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	return tags, nil
}
