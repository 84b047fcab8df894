package notification

import (
	"context"
	"log/slog"
	"time"
)

// Event names double as AMQP routing keys.
const (
	EventOrderCreated          = "order.created"
	EventOrderStatusChanged    = "order.status_changed"
	EventDeliveryAssigned      = "delivery.assigned"
	EventDeliveryStatusChanged = "delivery.status_changed"
	EventDeliveryCompleted     = "delivery.completed"
)

// Message is a rendered notification ready for delivery.
type Message struct {
	Event       string    `json:"event"`
	Recipient   string    `json:"recipient"`
	Subject     string    `json:"subject"`
	ContentType string    `json:"content_type"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

// Sender delivers a rendered message. An error aborts the operation that
// produced the notification.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ConsoleSender writes every message to the structured log.
type ConsoleSender struct {
	logger *slog.Logger
}

func NewConsoleSender(logger *slog.Logger) *ConsoleSender {
	return &ConsoleSender{logger: logger.With("component", "notification")}
}

func (s *ConsoleSender) Send(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "notification sent",
		"event", msg.Event,
		"to", msg.Recipient,
		"subject", msg.Subject,
		"content_type", msg.ContentType,
		"body", msg.Body,
	)
	return nil
}
