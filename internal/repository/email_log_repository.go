package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jstamb/california-breaking-news/internal/domain"
)

// PostgresEmailLogRepository implements EmailLogRepository using PostgreSQL.
type PostgresEmailLogRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEmailLogRepository creates a new PostgresEmailLogRepository.
func NewPostgresEmailLogRepository(pool *pgxpool.Pool) *PostgresEmailLogRepository {
	return &PostgresEmailLogRepository{pool: pool}
}

// Create appends a send-attempt record. The table is insert-only.
func (r *PostgresEmailLogRepository) Create(ctx context.Context, entry *domain.EmailLog) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO email_logs (id, email, subject, type, status, message_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, entry.ID, entry.Email, entry.Subject, entry.Type, entry.Status, entry.MessageID, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert email log: %w", err)
	}
	return nil
}

// ListRecentByType returns the most recent log entries of the given type.
func (r *PostgresEmailLogRepository) ListRecentByType(ctx context.Context, emailType string, limit int) ([]domain.EmailLog, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, email, subject, type, status, message_id, created_at
		FROM email_logs
		WHERE type = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, emailType, limit)
	if err != nil {
		return nil, fmt.Errorf("list email logs: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.EmailLog, 0)
	for rows.Next() {
		var entry domain.EmailLog
		if err := rows.Scan(&entry.ID, &entry.Email, &entry.Subject, &entry.Type,
			&entry.Status, &entry.MessageID, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan email log: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
