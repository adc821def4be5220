package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jstamb/california-breaking-news/internal/domain"
	"github.com/jstamb/california-breaking-news/internal/email"
	"github.com/jstamb/california-breaking-news/internal/logger"
	"github.com/jstamb/california-breaking-news/internal/metrics"
)

// ContactService relays contact-form submissions to the site inbox and sends
// the submitter a confirmation copy.
type ContactService struct {
	sender       email.Sender
	contactEmail string
}

func NewContactService(sender email.Sender, contactEmail string) *ContactService {
	return &ContactService{sender: sender, contactEmail: contactEmail}
}

// Submit forwards the message to the site inbox. The inbox delivery must
// succeed; the confirmation back to the sender is best-effort.
func (s *ContactService) Submit(ctx context.Context, msg domain.ContactMessage) error {
	result := s.sender.Send(ctx, email.Message{
		To:      s.contactEmail,
		Subject: fmt.Sprintf("Contact Form: %s", msg.Subject),
		HTML:    email.ContactEmail(msg),
		Type:    domain.EmailTypeContact,
	})
	metrics.ObserveEmailSend(domain.EmailTypeContact, result.Success)
	if !result.Success {
		return fmt.Errorf("deliver contact message: %w", result.Err)
	}

	confirmation := s.sender.Send(ctx, email.Message{
		To:      msg.Email,
		Subject: "We received your message",
		HTML:    email.ContactConfirmationEmail(msg.Name),
		Type:    domain.EmailTypeContactConfirmation,
	})
	metrics.ObserveEmailSend(domain.EmailTypeContactConfirmation, confirmation.Success)
	if !confirmation.Success {
		logger.Warn("Contact confirmation email failed",
			slog.String("to", msg.Email),
			slog.String("error", errString(confirmation.Err)))
	}

	logger.Info("Contact message relayed", slog.String("subject", msg.Subject))
	return nil
}
