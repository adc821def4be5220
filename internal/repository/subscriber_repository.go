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

// PostgresSubscriberRepository implements SubscriberRepository using
// PostgreSQL.
type PostgresSubscriberRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSubscriberRepository creates a new PostgresSubscriberRepository.
func NewPostgresSubscriberRepository(pool *pgxpool.Pool) *PostgresSubscriberRepository {
	return &PostgresSubscriberRepository{pool: pool}
}

const subscriberColumns = `id, email, first_name, last_name, is_verified, is_active,
	verify_token, unsubscribe_token, preferences, last_email_sent, created_at, updated_at`

// Create inserts a new subscriber. Email and token uniqueness is enforced by
// database constraints; a collision fails the write.
func (r *PostgresSubscriberRepository) Create(ctx context.Context, sub *domain.Subscriber) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO subscribers (id, email, first_name, last_name, is_verified, is_active,
			verify_token, unsubscribe_token, preferences, last_email_sent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, sub.ID, sub.Email, sub.FirstName, sub.LastName, sub.IsVerified, sub.IsActive,
		sub.VerifyToken, sub.UnsubscribeToken, sub.Preferences, sub.LastEmailSent,
		sub.CreatedAt, sub.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert subscriber: %w", err)
	}
	return nil
}

// GetByEmail returns the subscriber with the given email, or nil.
func (r *PostgresSubscriberRepository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	return r.getBy(ctx, "email", email)
}

// GetByVerifyToken returns the subscriber holding the verify token, or nil.
func (r *PostgresSubscriberRepository) GetByVerifyToken(ctx context.Context, token string) (*domain.Subscriber, error) {
	return r.getBy(ctx, "verify_token", token)
}

// GetByUnsubscribeToken returns the subscriber holding the unsubscribe token,
// or nil.
func (r *PostgresSubscriberRepository) GetByUnsubscribeToken(ctx context.Context, token string) (*domain.Subscriber, error) {
	return r.getBy(ctx, "unsubscribe_token", token)
}

func (r *PostgresSubscriberRepository) getBy(ctx context.Context, column, value string) (*domain.Subscriber, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+subscriberColumns+` FROM subscribers WHERE `+column+` = $1`, value)

	sub, err := scanSubscriber(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get subscriber by %s: %w", column, err)
	}
	return sub, nil
}

// Update persists changes to an existing subscriber.
func (r *PostgresSubscriberRepository) Update(ctx context.Context, sub *domain.Subscriber) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE subscribers
		SET email = $2, first_name = $3, last_name = $4, is_verified = $5,
			is_active = $6, verify_token = $7, preferences = $8, updated_at = $9
		WHERE id = $1
	`, sub.ID, sub.Email, sub.FirstName, sub.LastName, sub.IsVerified, sub.IsActive,
		sub.VerifyToken, sub.Preferences, sub.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update subscriber: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update subscriber: no subscriber with id %q", sub.ID)
	}
	return nil
}

// ListForDigest returns verified, active subscribers holding the preference.
func (r *PostgresSubscriberRepository) ListForDigest(ctx context.Context, preference string) ([]domain.Subscriber, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+subscriberColumns+`
		FROM subscribers
		WHERE is_verified = TRUE AND is_active = TRUE AND $1 = ANY(preferences)
		ORDER BY created_at
	`, preference)
	if err != nil {
		return nil, fmt.Errorf("list digest subscribers: %w", err)
	}
	defer rows.Close()

	subs := make([]domain.Subscriber, 0)
	for rows.Next() {
		sub, err := scanSubscriber(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		subs = append(subs, *sub)
	}
	return subs, rows.Err()
}

// CountActive returns the number of active subscribers.
func (r *PostgresSubscriberRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM subscribers WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active subscribers: %w", err)
	}
	return count, nil
}

// CountVerified returns the number of active, verified subscribers.
func (r *PostgresSubscriberRepository) CountVerified(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM subscribers WHERE is_active = TRUE AND is_verified = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count verified subscribers: %w", err)
	}
	return count, nil
}

// UpdateLastEmailSent stamps the subscriber's last-email-sent time.
func (r *PostgresSubscriberRepository) UpdateLastEmailSent(ctx context.Context, id string, sentAt time.Time) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE subscribers SET last_email_sent = $2, updated_at = $2 WHERE id = $1`, id, sentAt)
	if err != nil {
		return fmt.Errorf("update last email sent: %w", err)
	}
	return nil
}

func scanSubscriber(row pgx.Row) (*domain.Subscriber, error) {
	var sub domain.Subscriber
	err := row.Scan(&sub.ID, &sub.Email, &sub.FirstName, &sub.LastName, &sub.IsVerified,
		&sub.IsActive, &sub.VerifyToken, &sub.UnsubscribeToken, &sub.Preferences,
		&sub.LastEmailSent, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
