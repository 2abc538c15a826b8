package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/logger"
	"knowledge-base/internal/metrics"
	"knowledge-base/internal/validator"
)

// DefaultDispatchTimeout bounds the delivery of one mail to all recipients.
const DefaultDispatchTimeout = 2 * time.Minute

// RecipientFinder returns the users subscribed to a group or article.
type RecipientFinder interface {
	FindRecipients(ctx context.Context, groupID, resourceKey int64) ([]domain.Identity, error)
}

// MailDispatcher delivers queued change mail to subscribers.
type MailDispatcher struct {
	recipients RecipientFinder
	sender     Sender
	validator  *validator.Validator
	timeout    time.Duration
}

// NewMailDispatcher creates a MailDispatcher. A non-positive timeout uses DefaultDispatchTimeout.
func NewMailDispatcher(recipients RecipientFinder, sender Sender, v *validator.Validator, timeout time.Duration) *MailDispatcher {
	if timeout <= 0 {
		timeout = DefaultDispatchTimeout
	}
	return &MailDispatcher{recipients: recipients, sender: sender, validator: v, timeout: timeout}
}

// Handle is the event bus handler for event.TopicArticleMail.
func (d *MailDispatcher) Handle(payload any) {
	msg, ok := payload.(domain.MailMessage)
	if !ok {
		logger.Warn("Unexpected mail payload", slog.String("type", fmt.Sprintf("%T", payload)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if _, err := d.Dispatch(ctx, msg); err != nil {
		logger.Error("Failed to dispatch article mail",
			slog.Int64("resource_key", msg.ResourceKey),
			slog.String("error", err.Error()))
	}
}

// Dispatch sends msg to every subscriber with a valid address except the
// author. Delivery failures are logged per recipient. It returns the number
// of mails sent.
func (d *MailDispatcher) Dispatch(ctx context.Context, msg domain.MailMessage) (int, error) {
	recipients, err := d.recipients.FindRecipients(ctx, msg.GroupID, msg.ResourceKey)
	if err != nil {
		metrics.MailDeliveries.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("find recipients: %w", err)
	}

	seen := make(map[string]bool, len(recipients))
	sent := 0
	for _, r := range recipients {
		addr := strings.ToLower(strings.TrimSpace(r.Email))
		if r.ID == msg.AuthorID || seen[addr] {
			continue
		}
		if !d.validator.IsEmail(addr) {
			metrics.MailDeliveries.WithLabelValues("skipped").Inc()
			continue
		}
		seen[addr] = true

		if err := ctx.Err(); err != nil {
			return sent, err
		}
		if err := d.sender.Send(ctx, addr, msg); err != nil {
			logger.WarnContext(ctx, "Failed to send article mail",
				slog.String("user_id", r.ID),
				slog.Int64("resource_key", msg.ResourceKey),
				slog.String("error", err.Error()))
			metrics.MailDeliveries.WithLabelValues("failed").Inc()
			continue
		}
		metrics.MailDeliveries.WithLabelValues("sent").Inc()
		sent++
	}

	logger.InfoContext(ctx, "Article mail dispatched",
		slog.Int64("resource_key", msg.ResourceKey),
		slog.Int("recipients", len(recipients)),
		slog.Int("sent", sent))
	return sent, nil
}
