package repository

import (
	"context"

	"recyclemart/internal/domain/entity"
	"recyclemart/internal/errors"

	"github.com/google/uuid"
)

// ErrRequestNotFound is returned when no recycle request has the given id.
var ErrRequestNotFound = errors.New("recycle request not found")

// RecycleRequestRepository stores recycle requests inside each owner's user data.
type RecycleRequestRepository interface {
	// Submit appends a request to its owner's collection.
	Submit(ctx context.Context, request *entity.RecycleRequest) error

	// FindByID looks a request up across all owners.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecycleRequest, error)

	// ListByOwner returns the owner's requests in insertion order.
	ListByOwner(ctx context.Context, ownerEmail string) ([]*entity.RecycleRequest, error)

	// ListAll returns every request, owners in email order, each owner's in insertion order.
	ListAll(ctx context.Context) ([]*entity.RecycleRequest, error)

	// Update replaces a stored request, matched by id within its owner's collection.
	Update(ctx context.Context, request *entity.RecycleRequest) error
}

// NotificationRepository stores in-app notifications next to a user's requests.
type NotificationRepository interface {
	// Append adds a notification to the user's list.
	Append(ctx context.Context, ownerEmail string, notification *entity.Notification) error

	// ListByOwner returns the user's notifications, oldest first.
	ListByOwner(ctx context.Context, ownerEmail string) ([]*entity.Notification, error)

	// MarkAllRead flags every notification of the user as read and returns how many changed.
	MarkAllRead(ctx context.Context, ownerEmail string) (int, error)
}
