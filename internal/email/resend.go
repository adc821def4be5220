package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/jstamb/california-breaking-news/internal/domain"
	"github.com/jstamb/california-breaking-news/internal/logger"
	"github.com/jstamb/california-breaking-news/internal/repository"
)

const defaultBaseURL = "https://api.resend.com"

// ResendClient sends email through the Resend HTTP API.
type ResendClient struct {
	client  *resty.Client
	apiKey  string
	from    string
	logRepo repository.EmailLogRepository
}

// NewResendClient creates a Resend-backed Sender. An empty apiKey is allowed;
// sends then fail with a configuration error but are still logged.
func NewResendClient(apiKey, from string, logRepo repository.EmailLogRepository) *ResendClient {
	return &ResendClient{
		client:  resty.New().SetBaseURL(defaultBaseURL).SetTimeout(30 * time.Second),
		apiKey:  apiKey,
		from:    from,
		logRepo: logRepo,
	}
}

// SetBaseURL overrides the Resend endpoint. Used by tests.
func (c *ResendClient) SetBaseURL(url string) {
	c.client.SetBaseURL(url)
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID    string `json:"id"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Send dispatches one email and appends an email_logs row for the attempt
// regardless of outcome.
func (c *ResendClient) Send(ctx context.Context, msg Message) Result {
	if c.apiKey == "" {
		err := fmt.Errorf("email service not configured")
		logger.Error("Resend API key missing", slog.String("type", msg.Type))
		c.log(ctx, msg, domain.EmailStatusFailed, "")
		return Result{Success: false, Err: err}
	}

	var body resendResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetBody(resendRequest{
			From:    c.from,
			To:      []string{msg.To},
			Subject: msg.Subject,
			HTML:    msg.HTML,
		}).
		SetResult(&body).
		SetError(&body).
		Post("/emails")
	if err != nil {
		logger.Error("Email send failed",
			slog.String("to", msg.To),
			slog.String("type", msg.Type),
			slog.String("error", err.Error()))
		c.log(ctx, msg, domain.EmailStatusFailed, "")
		return Result{Success: false, Err: fmt.Errorf("send email: %w", err)}
	}

	if resp.IsError() {
		reason := "failed to send email"
		if body.Error != nil && body.Error.Message != "" {
			reason = body.Error.Message
		}
		logger.Error("Email provider rejected send",
			slog.String("to", msg.To),
			slog.String("type", msg.Type),
			slog.Int("status", resp.StatusCode()),
			slog.String("reason", reason))
		c.log(ctx, msg, domain.EmailStatusFailed, "")
		return Result{Success: false, Err: fmt.Errorf("send email: %s", reason)}
	}

	c.log(ctx, msg, domain.EmailStatusSent, body.ID)
	return Result{Success: true, MessageID: body.ID}
}

// log appends the attempt to the email log. A logging failure is reported but
// never fails the send itself.
func (c *ResendClient) log(ctx context.Context, msg Message, status, messageID string) {
	entry := &domain.EmailLog{
		ID:        uuid.New().String(),
		Email:     msg.To,
		Subject:   msg.Subject,
		Type:      msg.Type,
		Status:    status,
		CreatedAt: time.Now(),
	}
	if messageID != "" {
		entry.MessageID = &messageID
	}
	if err := c.logRepo.Create(ctx, entry); err != nil {
		logger.Warn("Failed to record email log entry",
			slog.String("to", msg.To),
			slog.String("error", err.Error()))
	}
}
