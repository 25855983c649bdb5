package usecase

import (
	"context"
	"time"

	"recyclemart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// AddToCartInput defines one device placed in the company cart.
type AddToCartInput struct {
	DeviceID       uuid.UUID
	ShippingMethod entity.ShippingMethod
	Location       string
	Coordinates    *orb.Point
}

// CartLine pairs a cart item with the current state of its device.
type CartLine struct {
	Item   *entity.CartItem
	Device *entity.InventoryDevice
}

// CreateOrderInput defines the checkout details.
type CreateOrderInput struct {
	PickupDate *time.Time
	Notes      string
}

// OrderUsecase defines the company cart and order lifecycle.
type OrderUsecase interface {
	AddToCart(ctx context.Context, input AddToCartInput) ([]*CartLine, error)
	RemoveFromCart(ctx context.Context, deviceID uuid.UUID) ([]*CartLine, error)
	ListCart(ctx context.Context) ([]*CartLine, error)
	CreateOrder(ctx context.Context, input CreateOrderInput) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	ListOrders(ctx context.Context) ([]*entity.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
	PickupLabel(ctx context.Context, orderID uuid.UUID) ([]byte, error)
}
