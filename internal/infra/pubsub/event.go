package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"recyclemart/internal/domain/service"

	"github.com/pkg/errors"
)

// encodedEvent is an order event ready for any transport: a JSON body plus routing attributes.
type encodedEvent struct {
	body       []byte
	attributes map[string]string
	occurredAt time.Time
}

func encodeEvent(event *service.OrderEvent) (*encodedEvent, error) {
	if event == nil {
		return nil, errors.New("order event is nil")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order event")
	}

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	return &encodedEvent{
		body:       body,
		attributes: eventAttributes(event),
		occurredAt: occurredAt.UTC(),
	}, nil
}

// eventAttributes returns the message attributes shared by all providers
func eventAttributes(event *service.OrderEvent) map[string]string {
	attributes := map[string]string{
		"order_id":   event.OrderID,
		"event_type": event.Type,
		"status":     event.Status,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

func logPublished(ctx context.Context, logger *slog.Logger, provider string, event *service.OrderEvent, attrs ...slog.Attr) {
	attrs = append(attrs,
		slog.String("provider", provider),
		slog.String("order_id", event.OrderID),
		slog.String("event_type", event.Type),
	)
	logger.LogAttrs(ctx, slog.LevelInfo, "Order event published", attrs...)
}
