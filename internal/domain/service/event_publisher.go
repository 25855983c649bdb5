package service

import (
	"context"
	"time"
)

// OrderEvent represents an order lifecycle change published after the transaction commits.
type OrderEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID      string    `json:"order_id"`
	CompanyEmail string    `json:"company_email"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	DeviceIDs    []string  `json:"device_ids"`
	Total        string    `json:"total"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for downstream consumers
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// StorageHealth reports whether persistence has fallen back to a non-durable in-memory mode.
type StorageHealth interface {
	Degraded() bool
}
