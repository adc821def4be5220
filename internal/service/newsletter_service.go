package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jstamb/california-breaking-news/internal/domain"
	"github.com/jstamb/california-breaking-news/internal/email"
	"github.com/jstamb/california-breaking-news/internal/logger"
	"github.com/jstamb/california-breaking-news/internal/metrics"
	"github.com/jstamb/california-breaking-news/internal/repository"
)

// ErrAlreadySubscribed is returned when a verified, active subscriber tries
// to subscribe again. No state changes.
var ErrAlreadySubscribed = errors.New("this email is already subscribed")

// DigestWindow is the trailing period a digest draws posts from.
const DigestWindow = 7 * 24 * time.Hour

// recentDigestLogs is how many digest log rows Stats returns.
const recentDigestLogs = 10

// NewsletterService drives the subscriber lifecycle and the weekly digest.
type NewsletterService struct {
	subscribers repository.SubscriberRepository
	posts       repository.PostRepository
	emailLogs   repository.EmailLogRepository
	sender      email.Sender

	siteURL    string
	batchSize  int
	batchDelay time.Duration
}

// NewNewsletterService creates a new NewsletterService. batchSize bounds the
// number of concurrent sends in one digest batch; batchDelay is the fixed
// pause between batches.
func NewNewsletterService(
	subscribers repository.SubscriberRepository,
	posts repository.PostRepository,
	emailLogs repository.EmailLogRepository,
	sender email.Sender,
	siteURL string,
	batchSize int,
	batchDelay time.Duration,
) *NewsletterService {
	return &NewsletterService{
		subscribers: subscribers,
		posts:       posts,
		emailLogs:   emailLogs,
		sender:      sender,
		siteURL:     strings.TrimRight(siteURL, "/"),
		batchSize:   batchSize,
		batchDelay:  batchDelay,
	}
}

// Subscribe handles a subscribe request for a new or existing email:
//
//   - no record: create unverified+active with fresh tokens, send verification
//   - existing, unverified: reissue the verify token, force active, resend
//   - existing, verified+active: ErrAlreadySubscribed, nothing mutated
//   - existing, inactive: reissue token, reactivate, clear verified (a
//     re-subscribe is a fresh opt-in), optionally update names, resend
//
// The verification email is dispatched synchronously but its failure does not
// fail the subscribe; the attempt is recorded in the email log either way.
func (s *NewsletterService) Subscribe(ctx context.Context, rawEmail string, firstName, lastName *string) (*SubscribeResult, error) {
	address := strings.ToLower(strings.TrimSpace(rawEmail))

	existing, err := s.subscribers.GetByEmail(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("look up subscriber: %w", err)
	}

	if existing != nil {
		if existing.IsVerified && existing.IsActive {
			return nil, ErrAlreadySubscribed
		}

		token, err := newToken()
		if err != nil {
			return nil, err
		}

		wasInactive := !existing.IsActive
		existing.VerifyToken = &token
		existing.IsActive = true
		if wasInactive {
			// Re-subscribing after an unsubscribe is a fresh opt-in:
			// re-verification is required even if previously verified.
			existing.IsVerified = false
			if firstName != nil {
				existing.FirstName = firstName
			}
			if lastName != nil {
				existing.LastName = lastName
			}
		}
		existing.UpdatedAt = time.Now()

		if err := s.subscribers.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update subscriber: %w", err)
		}

		subject := "Verify your subscription to California Breaking News"
		message := "Verification email sent. Please check your inbox."
		if wasInactive {
			subject = "Welcome back to California Breaking News"
			message = "Welcome back! Verification email sent."
		}
		s.sendVerification(ctx, existing, subject)

		logger.Info("Subscriber re-subscribed",
			slog.String("subscriber_id", existing.ID),
			slog.Bool("was_inactive", wasInactive))
		return &SubscribeResult{Created: false, Message: message}, nil
	}

	verifyToken, err := newToken()
	if err != nil {
		return nil, err
	}
	unsubscribeToken, err := newToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sub := &domain.Subscriber{
		ID:               uuid.New().String(),
		Email:            address,
		FirstName:        firstName,
		LastName:         lastName,
		IsVerified:       false,
		IsActive:         true,
		VerifyToken:      &verifyToken,
		UnsubscribeToken: unsubscribeToken,
		Preferences:      []string{domain.PreferenceWeekly},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.subscribers.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("create subscriber: %w", err)
	}

	s.sendVerification(ctx, sub, "Verify your subscription to California Breaking News")

	logger.Info("Subscriber created", slog.String("subscriber_id", sub.ID))
	return &SubscribeResult{
		Created: true,
		Message: "Thanks for subscribing! Please check your email to verify.",
	}, nil
}

func (s *NewsletterService) sendVerification(ctx context.Context, sub *domain.Subscriber, subject string) {
	verifyURL := fmt.Sprintf("%s/api/v1/newsletter/verify/%s", s.siteURL, *sub.VerifyToken)
	result := s.sender.Send(ctx, email.Message{
		To:      sub.Email,
		Subject: subject,
		HTML:    email.WelcomeEmail(verifyURL, sub.FirstName),
		Type:    domain.EmailTypeWelcome,
	})
	metrics.ObserveEmailSend(domain.EmailTypeWelcome, result.Success)
	if !result.Success {
		logger.Warn("Verification email failed",
			slog.String("subscriber_id", sub.ID),
			slog.String("error", errString(result.Err)))
	}
}

// Verify consumes a verification token. Consuming is single-use: the token is
// cleared on success. A token that resolves to an already-verified record is
// reported distinctly but treated as success by callers.
func (s *NewsletterService) Verify(ctx context.Context, token string) (VerifyStatus, error) {
	if token == "" {
		return VerifyInvalidToken, nil
	}

	sub, err := s.subscribers.GetByVerifyToken(ctx, token)
	if err != nil {
		return VerifyInvalidToken, fmt.Errorf("look up verify token: %w", err)
	}
	if sub == nil {
		return VerifyInvalidToken, nil
	}
	if sub.IsVerified {
		return VerifyAlreadyVerified, nil
	}

	sub.IsVerified = true
	sub.VerifyToken = nil
	sub.UpdatedAt = time.Now()
	if err := s.subscribers.Update(ctx, sub); err != nil {
		return VerifyInvalidToken, fmt.Errorf("mark subscriber verified: %w", err)
	}

	result := s.sender.Send(ctx, email.Message{
		To:      sub.Email,
		Subject: "Welcome to California Breaking News!",
		HTML:    email.VerifiedEmail(sub.FirstName),
		Type:    domain.EmailTypeVerify,
	})
	metrics.ObserveEmailSend(domain.EmailTypeVerify, result.Success)

	logger.Info("Subscriber verified", slog.String("subscriber_id", sub.ID))
	return VerifyOK, nil
}

// Unsubscribe deactivates the subscriber holding the token. The unsubscribe
// token is stable, so repeat calls are idempotent successes.
func (s *NewsletterService) Unsubscribe(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	sub, err := s.subscribers.GetByUnsubscribeToken(ctx, token)
	if err != nil {
		return false, fmt.Errorf("look up unsubscribe token: %w", err)
	}
	if sub == nil {
		return false, nil
	}

	if sub.IsActive {
		sub.IsActive = false
		sub.UpdatedAt = time.Now()
		if err := s.subscribers.Update(ctx, sub); err != nil {
			return false, fmt.Errorf("deactivate subscriber: %w", err)
		}
		logger.Info("Subscriber unsubscribed", slog.String("subscriber_id", sub.ID))
	}
	return true, nil
}

// SendDigest selects the top posts of the trailing week and emails them to
// every verified, active subscriber with the weekly preference. Sends run
// concurrently within fixed-size batches with a fixed pause between batches.
// Once a batch starts, all its sends run to completion; there is no abort
// path mid-run.
func (s *NewsletterService) SendDigest(ctx context.Context, limit int) (*DigestResult, error) {
	start := time.Now()

	posts, err := s.posts.TopForDigest(ctx, time.Now().Add(-DigestWindow), limit)
	if err != nil {
		return nil, fmt.Errorf("load digest posts: %w", err)
	}
	if len(posts) == 0 {
		// Nothing to send; skip the subscriber query entirely.
		logger.Info("Digest skipped: no posts in window")
		metrics.ObserveDigestRun("empty", time.Since(start).Seconds(), 0, 0)
		return &DigestResult{}, nil
	}

	subscribers, err := s.subscribers.ListForDigest(ctx, domain.PreferenceWeekly)
	if err != nil {
		return nil, fmt.Errorf("load digest subscribers: %w", err)
	}
	if len(subscribers) == 0 {
		logger.Info("Digest skipped: no eligible subscribers",
			slog.Int("posts", len(posts)))
		metrics.ObserveDigestRun("no_subscribers", time.Since(start).Seconds(), 0, 0)
		return &DigestResult{PostsIncluded: len(posts)}, nil
	}

	var sent, failed int
	for offset := 0; offset < len(subscribers); offset += s.batchSize {
		end := offset + s.batchSize
		if end > len(subscribers) {
			end = len(subscribers)
		}
		batch := subscribers[offset:end]

		outcomes := make([]bool, len(batch))
		var wg sync.WaitGroup
		for i := range batch {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				outcomes[i] = s.sendDigestTo(ctx, &batch[i], posts)
			}(i)
		}
		wg.Wait()

		for _, ok := range outcomes {
			if ok {
				sent++
			} else {
				failed++
			}
		}

		// Fixed pause between batches to stay under the provider's rate
		// limits.
		if end < len(subscribers) {
			time.Sleep(s.batchDelay)
		}
	}

	logger.Info("Digest run completed",
		slog.Int("sent", sent),
		slog.Int("failed", failed),
		slog.Int("subscribers", len(subscribers)),
		slog.Int("posts", len(posts)),
		slog.Duration("elapsed", time.Since(start).Round(time.Millisecond)))
	metrics.ObserveDigestRun("completed", time.Since(start).Seconds(), sent, failed)

	return &DigestResult{
		Sent:             sent,
		Failed:           failed,
		TotalSubscribers: len(subscribers),
		PostsIncluded:    len(posts),
	}, nil
}

// sendDigestTo dispatches one personalized digest. On success the
// subscriber's last-sent stamp is updated best-effort: a failure there never
// fails the send.
func (s *NewsletterService) sendDigestTo(ctx context.Context, sub *domain.Subscriber, posts []domain.Post) bool {
	unsubscribeURL := fmt.Sprintf("%s/api/v1/newsletter/unsubscribe/%s", s.siteURL, sub.UnsubscribeToken)

	result := s.sender.Send(ctx, email.Message{
		To:      sub.Email,
		Subject: "Weekly Digest: Top California News Stories",
		HTML:    email.WeeklyDigestEmail(posts, s.siteURL, unsubscribeURL, sub.FirstName),
		Type:    domain.EmailTypeWeeklyDigest,
	})
	metrics.ObserveEmailSend(domain.EmailTypeWeeklyDigest, result.Success)

	if !result.Success {
		logger.Warn("Digest send failed",
			slog.String("subscriber_id", sub.ID),
			slog.String("error", errString(result.Err)))
		return false
	}

	if err := s.subscribers.UpdateLastEmailSent(ctx, sub.ID, time.Now()); err != nil {
		logger.Warn("Failed to stamp last-email-sent time",
			slog.String("subscriber_id", sub.ID),
			slog.String("error", err.Error()))
	}
	return true
}

// Stats returns subscriber counts and the most recent digest log entries.
func (s *NewsletterService) Stats(ctx context.Context) (*DigestStats, error) {
	active, err := s.subscribers.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active subscribers: %w", err)
	}
	verified, err := s.subscribers.CountVerified(ctx)
	if err != nil {
		return nil, fmt.Errorf("count verified subscribers: %w", err)
	}
	recent, err := s.emailLogs.ListRecentByType(ctx, domain.EmailTypeWeeklyDigest, recentDigestLogs)
	if err != nil {
		return nil, fmt.Errorf("list recent digests: %w", err)
	}
	return &DigestStats{
		ActiveSubscribers:   active,
		VerifiedSubscribers: verified,
		RecentDigests:       recent,
	}, nil
}

func errString(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
