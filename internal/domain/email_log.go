package domain

import "time"

// Email delivery statuses recorded in the email log.
const (
	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// Email types, used to categorize outbound sends.
const (
	EmailTypeWelcome             = "welcome"
	EmailTypeVerify              = "verify"
	EmailTypeWeeklyDigest        = "weekly_digest"
	EmailTypeBreaking            = "breaking"
	EmailTypeContact             = "contact"
	EmailTypeContactConfirmation = "contact-confirmation"
)

// EmailLog is an append-only record of a single outbound send attempt.
// Rows are written once and never mutated or deleted.
type EmailLog struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	MessageID *string   `json:"message_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
