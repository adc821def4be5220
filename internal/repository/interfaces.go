package repository

import (
	"context"
	"time"

	"github.com/jstamb/california-breaking-news/internal/domain"
)

// PostRepository defines methods for post data access.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error)
	Count(ctx context.Context, filter domain.PostFilter) (int, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, slug string) error
	// PublishedSince returns slim refs for published posts with a publish
	// time at or after since, newest first. Candidate pool for the
	// duplicate-title check.
	PublishedSince(ctx context.Context, since time.Time) ([]domain.PostRef, error)
	// TopForDigest returns up to limit published posts since the cutoff,
	// ordered breaking first, then by views, then by publish time.
	TopForDigest(ctx context.Context, since time.Time, limit int) ([]domain.Post, error)
	// IncrementViews atomically bumps the view counter for a slug.
	IncrementViews(ctx context.Context, slug string) error
}

// SubscriberRepository defines methods for subscriber data access.
type SubscriberRepository interface {
	Create(ctx context.Context, sub *domain.Subscriber) error
	GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error)
	GetByVerifyToken(ctx context.Context, token string) (*domain.Subscriber, error)
	GetByUnsubscribeToken(ctx context.Context, token string) (*domain.Subscriber, error)
	Update(ctx context.Context, sub *domain.Subscriber) error
	// ListForDigest returns verified, active subscribers holding the given
	// preference.
	ListForDigest(ctx context.Context, preference string) ([]domain.Subscriber, error)
	CountActive(ctx context.Context) (int, error)
	CountVerified(ctx context.Context) (int, error)
	// UpdateLastEmailSent stamps the subscriber's last-email-sent time.
	// Callers treat failures as best effort.
	UpdateLastEmailSent(ctx context.Context, id string, sentAt time.Time) error
}

// EmailLogRepository records outbound send attempts. The log is append-only:
// rows are written once and never mutated or deleted.
type EmailLogRepository interface {
	Create(ctx context.Context, entry *domain.EmailLog) error
	ListRecentByType(ctx context.Context, emailType string, limit int) ([]domain.EmailLog, error)
}

// APIKeyRepository authorizes ingestion and admin requests.
type APIKeyRepository interface {
	// FindActive returns the active key record matching the raw key, or nil.
	FindActive(ctx context.Context, key string) (*domain.APIKey, error)
	// TouchLastUsed stamps the key's last-used time. Best effort.
	TouchLastUsed(ctx context.Context, id string) error
}
