package notification

import (
	"log/slog"

	"knowledge-base/internal/domain"
	"knowledge-base/internal/logger"
)

// PushListener receives push payloads. No push transport is configured, so
// payloads are only logged.
type PushListener struct{}

// Handle is the event bus handler for event.TopicPushNotification.
func (PushListener) Handle(payload any) {
	push, ok := payload.(domain.PushPayload)
	if !ok {
		return
	}
	logger.Debug("Push notification",
		slog.String("event", push.Event),
		slog.Int64("resource_key", push.ResourceKey),
		slog.String("url", push.URL))
}
