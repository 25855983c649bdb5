package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification types shown to customers.
const (
	NotificationQuoteReady      = "quote_ready"
	NotificationRequestComplete = "request_completed"
	NotificationRequestRejected = "request_rejected"
	NotificationPointsAwarded   = "points_awarded"
)

// Notification is an in-app message stored alongside a user's requests.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}
