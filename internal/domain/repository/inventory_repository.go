package repository

import (
	"context"

	"recyclemart/internal/domain/entity"
	"recyclemart/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for inventory persistence.
var (
	// ErrDeviceNotFound is returned when a device id is absent.
	ErrDeviceNotFound = errors.New("inventory device not found")
	// ErrDeviceAlreadyOrdered is returned when marking a device that an order already claimed.
	ErrDeviceAlreadyOrdered = errors.New("inventory device already ordered")
)

// InventoryRepository defines the operations over the recycling devices collection.
type InventoryRepository interface {
	// List returns every device in insertion order.
	List(ctx context.Context) ([]*entity.InventoryDevice, error)

	// FindByID retrieves a device by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InventoryDevice, error)

	// Create appends a new device.
	Create(ctx context.Context, device *entity.InventoryDevice) error

	// Update replaces a stored device.
	Update(ctx context.Context, device *entity.InventoryDevice) error

	// MarkOrdered flags every listed device as ordered with the same order info.
	// Nothing is written unless every id exists and is still available.
	MarkOrdered(ctx context.Context, ids []uuid.UUID, info entity.OrderInfo) error

	// CountByType counts devices per type.
	CountByType(ctx context.Context) (map[entity.DeviceType]int, error)
}
