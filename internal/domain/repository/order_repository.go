package repository

import (
	"context"

	"recyclemart/internal/domain/entity"
	"recyclemart/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when no order has the given id.
var ErrOrderNotFound = errors.New("order not found")

// CartRepository stores each company's cart.
type CartRepository interface {
	// List returns the company's cart items in the order they were added.
	List(ctx context.Context, companyEmail string) ([]*entity.CartItem, error)

	// Save replaces the company's cart.
	Save(ctx context.Context, companyEmail string, items []*entity.CartItem) error

	// Clear empties the company's cart.
	Clear(ctx context.Context, companyEmail string) error
}

// OrderRepository stores finalized company orders.
type OrderRepository interface {
	// List returns every order in creation order.
	List(ctx context.Context) ([]*entity.Order, error)

	// FindByID retrieves an order by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// Create appends a new order.
	Create(ctx context.Context, order *entity.Order) error

	// Update replaces a stored order.
	Update(ctx context.Context, order *entity.Order) error
}
