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

// PostgresAPIKeyRepository implements APIKeyRepository using PostgreSQL.
type PostgresAPIKeyRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAPIKeyRepository creates a new PostgresAPIKeyRepository.
func NewPostgresAPIKeyRepository(pool *pgxpool.Pool) *PostgresAPIKeyRepository {
	return &PostgresAPIKeyRepository{pool: pool}
}

// FindActive returns the active key record matching the raw key, or nil.
func (r *PostgresAPIKeyRepository) FindActive(ctx context.Context, key string) (*domain.APIKey, error) {
	var apiKey domain.APIKey
	err := r.pool.QueryRow(ctx, `
		SELECT id, key, name, is_active, last_used, created_at
		FROM api_keys
		WHERE key = $1 AND is_active = TRUE
	`, key).Scan(&apiKey.ID, &apiKey.Key, &apiKey.Name, &apiKey.IsActive,
		&apiKey.LastUsed, &apiKey.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find api key: %w", err)
	}
	return &apiKey, nil
}

// TouchLastUsed stamps the key's last-used time.
func (r *PostgresAPIKeyRepository) TouchLastUsed(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE api_keys SET last_used = $2 WHERE id = $1`, id, time.Now())
	if err != nil {
		return fmt.Errorf("touch api key: %w", err)
	}
	return nil
}
