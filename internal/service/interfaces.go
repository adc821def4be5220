package service

import (
	"context"

	"github.com/jstamb/california-breaking-news/internal/domain"
	"github.com/jstamb/california-breaking-news/internal/similarity"
)

// PostServiceInterface defines the interface for post operations.
// Used for dependency injection and mocking in tests.
type PostServiceInterface interface {
	// CreatePost validates the input, assigns a unique slug, and persists
	// a new post.
	CreatePost(ctx context.Context, in domain.PostInput) (*domain.Post, error)
	// GetPost returns a post by slug, or nil if none exists. Fetching a
	// post bumps its view counter best-effort.
	GetPost(ctx context.Context, slug string) (*domain.Post, error)
	// ListPosts returns published posts matching the filter plus the total
	// matching count.
	ListPosts(ctx context.Context, filter domain.PostFilter) ([]domain.Post, int, error)
	// UpdatePost applies a partial update to the post with the given slug.
	// Returns nil if no such post exists.
	UpdatePost(ctx context.Context, slug string, in domain.PostInput) (*domain.Post, error)
	// DeletePost removes a post. Returns false if no such post exists.
	DeletePost(ctx context.Context, slug string) (bool, error)
	// CheckDuplicate compares a candidate title against recently published
	// posts.
	CheckDuplicate(ctx context.Context, title string, hours int, threshold float64) (*similarity.Result, error)
}

// SubscribeResult reports the outcome of a subscribe request.
type SubscribeResult struct {
	Created bool
	Message string
}

// VerifyStatus is the outcome of consuming a verification token.
type VerifyStatus string

// Verification outcomes.
const (
	VerifyOK              VerifyStatus = "verified"
	VerifyAlreadyVerified VerifyStatus = "already-verified"
	VerifyInvalidToken    VerifyStatus = "invalid-token"
)

// DigestResult aggregates one digest run.
type DigestResult struct {
	Sent             int `json:"sent"`
	Failed           int `json:"failed"`
	TotalSubscribers int `json:"total_subscribers"`
	PostsIncluded    int `json:"posts_included"`
}

// DigestStats is the read-only digest overview.
type DigestStats struct {
	ActiveSubscribers   int               `json:"active_subscribers"`
	VerifiedSubscribers int               `json:"verified_subscribers"`
	RecentDigests       []domain.EmailLog `json:"recent_digests"`
}

// NewsletterServiceInterface defines the interface for newsletter operations.
// Used for dependency injection and mocking in tests.
type NewsletterServiceInterface interface {
	// Subscribe creates or re-activates a subscriber and sends a
	// verification email. ErrAlreadySubscribed is returned for a
	// verified, active subscriber.
	Subscribe(ctx context.Context, email string, firstName, lastName *string) (*SubscribeResult, error)
	// Verify consumes a verification token.
	Verify(ctx context.Context, token string) (VerifyStatus, error)
	// Unsubscribe deactivates the subscriber holding the token. Returns
	// false when the token resolves to no record.
	Unsubscribe(ctx context.Context, token string) (bool, error)
	// SendDigest runs the weekly digest over at most limit posts.
	SendDigest(ctx context.Context, limit int) (*DigestResult, error)
	// Stats returns subscriber counts and recent digest log entries.
	Stats(ctx context.Context) (*DigestStats, error)
}

// ContactServiceInterface relays contact-form submissions by email.
type ContactServiceInterface interface {
	Submit(ctx context.Context, msg domain.ContactMessage) error
}
