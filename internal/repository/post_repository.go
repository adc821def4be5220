package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jstamb/california-breaking-news/internal/domain"
)

// PostgresPostRepository implements PostRepository using PostgreSQL.
type PostgresPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPostRepository creates a new PostgresPostRepository.
func NewPostgresPostRepository(pool *pgxpool.Pool) *PostgresPostRepository {
	return &PostgresPostRepository{pool: pool}
}

const postColumns = `id, slug, title, excerpt, content, category, tags, author,
	featured_image, image_alt, is_breaking, is_published, meta_title,
	meta_description, view_count, published_at, created_at, updated_at`

// Create inserts a new post.
func (r *PostgresPostRepository) Create(ctx context.Context, post *domain.Post) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO posts (id, slug, title, excerpt, content, category, tags, author,
			featured_image, image_alt, is_breaking, is_published, meta_title,
			meta_description, view_count, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`, post.ID, post.Slug, post.Title, post.Excerpt, post.Content, post.Category,
		post.Tags, post.Author, post.FeaturedImage, post.ImageAlt, post.IsBreaking,
		post.IsPublished, post.MetaTitle, post.MetaDescription, post.ViewCount,
		post.PublishedAt, post.CreatedAt, post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// GetBySlug returns the post with the given slug, or nil if none exists.
func (r *PostgresPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+postColumns+` FROM posts WHERE slug = $1`, slug)

	post, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get post by slug: %w", err)
	}
	return post, nil
}

// SlugExists reports whether any post already uses the slug.
func (r *PostgresPostRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM posts WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug exists: %w", err)
	}
	return exists, nil
}

// List returns published posts matching the filter, newest first.
func (r *PostgresPostRepository) List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE is_published = TRUE`
	where, args := buildPostFilter(filter)
	query += where

	argNum := len(args) + 1
	query += fmt.Sprintf(" ORDER BY published_at DESC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

// Count returns the number of published posts matching the filter.
func (r *PostgresPostRepository) Count(ctx context.Context, filter domain.PostFilter) (int, error) {
	query := `SELECT COUNT(*) FROM posts WHERE is_published = TRUE`
	where, args := buildPostFilter(filter)
	query += where

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

func buildPostFilter(filter domain.PostFilter) (string, []interface{}) {
	var where string
	var args []interface{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.IsBreaking != nil {
		args = append(args, *filter.IsBreaking)
		where += fmt.Sprintf(" AND is_breaking = $%d", len(args))
	}
	return where, args
}

// Update persists changes to an existing post, keyed by slug. The slug itself
// is immutable.
func (r *PostgresPostRepository) Update(ctx context.Context, post *domain.Post) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $2, excerpt = $3, content = $4, category = $5, tags = $6,
			author = $7, featured_image = $8, image_alt = $9, is_breaking = $10,
			is_published = $11, meta_title = $12, meta_description = $13,
			updated_at = $14
		WHERE slug = $1
	`, post.Slug, post.Title, post.Excerpt, post.Content, post.Category, post.Tags,
		post.Author, post.FeaturedImage, post.ImageAlt, post.IsBreaking,
		post.IsPublished, post.MetaTitle, post.MetaDescription, post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update post: no post with slug %q", post.Slug)
	}
	return nil
}

// Delete removes the post with the given slug.
func (r *PostgresPostRepository) Delete(ctx context.Context, slug string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete post: no post with slug %q", slug)
	}
	return nil
}

// PublishedSince returns slim refs for published posts with a publish time at
// or after since, newest first.
func (r *PostgresPostRepository) PublishedSince(ctx context.Context, since time.Time) ([]domain.PostRef, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, slug, title, published_at
		FROM posts
		WHERE is_published = TRUE AND published_at >= $1
		ORDER BY published_at DESC
	`, since)
	if err != nil {
		return nil, fmt.Errorf("query published posts: %w", err)
	}
	defer rows.Close()

	refs := make([]domain.PostRef, 0)
	for rows.Next() {
		var ref domain.PostRef
		if err := rows.Scan(&ref.ID, &ref.Slug, &ref.Title, &ref.PublishedAt); err != nil {
			return nil, fmt.Errorf("scan post ref: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// TopForDigest returns up to limit published posts since the cutoff, ordered
// breaking first, then by views, then by publish time.
func (r *PostgresPostRepository) TopForDigest(ctx context.Context, since time.Time, limit int) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE is_published = TRUE AND published_at >= $1
		ORDER BY is_breaking DESC, view_count DESC, published_at DESC
		LIMIT $2
	`, since, limit)
	if err != nil {
		return nil, fmt.Errorf("query digest posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan digest post: %w", err)
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

// IncrementViews atomically bumps the view counter for a slug.
func (r *PostgresPostRepository) IncrementViews(ctx context.Context, slug string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE posts SET view_count = view_count + 1 WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var post domain.Post
	err := row.Scan(&post.ID, &post.Slug, &post.Title, &post.Excerpt, &post.Content,
		&post.Category, &post.Tags, &post.Author, &post.FeaturedImage, &post.ImageAlt,
		&post.IsBreaking, &post.IsPublished, &post.MetaTitle, &post.MetaDescription,
		&post.ViewCount, &post.PublishedAt, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
