package repository

import (
	"context"

	"recyclemart/internal/domain/entity"
	"recyclemart/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no market product has the given id.
var ErrProductNotFound = errors.New("market product not found")

// MarketProductRepository stores products customers can buy with voucher credit.
type MarketProductRepository interface {
	// List returns the products in insertion order.
	List(ctx context.Context) ([]*entity.MarketProduct, error)

	// FindByID retrieves a product by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MarketProduct, error)

	// Create appends a product.
	Create(ctx context.Context, product *entity.MarketProduct) error
}
