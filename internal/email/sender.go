// Package email handles outbound transactional email through the Resend API
// and records every send attempt in the email log.
package email

import "context"

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Type    string
}

// Result reports the outcome of a send attempt.
type Result struct {
	Success   bool
	MessageID string
	Err       error
}

// Sender dispatches a single email. Implementations log every attempt,
// success or failure, before returning.
type Sender interface {
	Send(ctx context.Context, msg Message) Result
}
