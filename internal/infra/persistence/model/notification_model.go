package model

import (
	"recyclemart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// UserDataRecord is the per-user document stored under "userData_<email>".
type UserDataRecord struct {
	RecycleRequests []RecycleRequestRecord `json:"recycleRequests"`
	Notifications   []NotificationRecord   `json:"notifications"`
}

// NotificationRecord is the stored form of entity.Notification.
type NotificationRecord struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
	Read      bool   `json:"read"`
}

// ToNotificationDomain maps a stored notification to the entity.
func ToNotificationDomain(rec *NotificationRecord) (*entity.Notification, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid notification id %q", rec.ID)
	}

	return &entity.Notification{
		ID:        id,
		Type:      rec.Type,
		Message:   rec.Message,
		CreatedAt: ParseTime(rec.CreatedAt),
		Read:      rec.Read,
	}, nil
}

// FromNotificationDomain maps the entity to its stored record.
func FromNotificationDomain(n *entity.Notification) NotificationRecord {
	return NotificationRecord{
		ID:        n.ID.String(),
		Type:      n.Type,
		Message:   n.Message,
		CreatedAt: FormatTime(n.CreatedAt),
		Read:      n.Read,
	}
}
