package email_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jstamb/california-breaking-news/internal/domain"
	"github.com/jstamb/california-breaking-news/internal/email"
)

func strPtr(s string) *string { return &s }

func TestWelcomeEmail(t *testing.T) {
	t.Run("includes verify link and name", func(t *testing.T) {
		html := email.WelcomeEmail("https://example.com/api/v1/newsletter/verify/tok123", strPtr("Maria"))
		assert.Contains(t, html, "https://example.com/api/v1/newsletter/verify/tok123")
		assert.Contains(t, html, "Hi Maria,")
		assert.Contains(t, html, "Verify My Email")
	})

	t.Run("falls back to generic greeting", func(t *testing.T) {
		html := email.WelcomeEmail("https://example.com/verify/tok", nil)
		assert.Contains(t, html, "Welcome!")
		assert.NotContains(t, html, "Hi ,")
	})

	t.Run("escapes the first name", func(t *testing.T) {
		html := email.WelcomeEmail("https://example.com/verify/tok", strPtr("<script>"))
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
	})
}

func TestVerifiedEmail(t *testing.T) {
	html := email.VerifiedEmail(strPtr("Jordan"))
	assert.Contains(t, html, "Hi Jordan,")
	assert.Contains(t, html, "Your subscription is confirmed")
}

func TestWeeklyDigestEmail(t *testing.T) {
	posts := []domain.Post{
		{
			Slug:        "wildfire-containment-update",
			Title:       "Wildfire Containment Reaches 80%",
			Excerpt:     "Crews make progress against the blaze.",
			Category:    "environment",
			Author:      "News Staff",
			PublishedAt: time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC),
		},
		{
			Slug:        "state-budget-signed",
			Title:       "Governor Signs State Budget",
			Excerpt:     "The budget includes new housing funds.",
			Category:    "politics",
			Author:      "News Staff",
			PublishedAt: time.Date(2026, 8, 26, 14, 30, 0, 0, time.UTC),
		},
	}

	html := email.WeeklyDigestEmail(posts, "https://example.com", "https://example.com/api/v1/newsletter/unsubscribe/tok456", strPtr("Sam"))

	assert.Contains(t, html, "Hi Sam,")
	assert.Contains(t, html, "https://example.com/news/wildfire-containment-update")
	assert.Contains(t, html, "https://example.com/news/state-budget-signed")
	assert.Contains(t, html, "Wildfire Containment Reaches 80%")
	assert.Contains(t, html, "Governor Signs State Budget")
	assert.Contains(t, html, "August 24, 2026")
	assert.Contains(t, html, "https://example.com/api/v1/newsletter/unsubscribe/tok456")
	assert.Contains(t, html, "Unsubscribe")
}

func TestContactEmail(t *testing.T) {
	html := email.ContactEmail(domain.ContactMessage{
		Name:    "Alex Reader",
		Email:   "alex@example.com",
		Subject: "Story tip <urgent>",
		Message: "I saw something newsworthy.",
	})

	assert.Contains(t, html, "Alex Reader")
	assert.Contains(t, html, "alex@example.com")
	assert.Contains(t, html, "Story tip &lt;urgent&gt;")
	assert.NotContains(t, html, "<urgent>")
	assert.Contains(t, html, "I saw something newsworthy.")
}

func TestContactConfirmationEmail(t *testing.T) {
	html := email.ContactConfirmationEmail("Alex")
	assert.Contains(t, html, "Hi Alex,")
	assert.Contains(t, html, "Message Received!")
}
