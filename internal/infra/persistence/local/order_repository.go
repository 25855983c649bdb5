package local

import (
	"context"
	"log/slog"

	"recyclemart/internal/domain/entity"
	"recyclemart/internal/domain/repository"
	"recyclemart/internal/infra/persistence/kv"
	"recyclemart/internal/infra/persistence/model"

	"github.com/google/uuid"
)

// cartRepository implements repository.CartRepository on "recyclingCart_<email>".
type cartRepository struct {
	collection
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(store kv.Store, logger *slog.Logger) repository.CartRepository {
	return &cartRepository{collection{store: store, logger: logger}}
}

// List returns the company's cart items in the order they were added.
func (repo *cartRepository) List(ctx context.Context, companyEmail string) ([]*entity.CartItem, error) {
	var records []model.CartItemRecord
	if err := repo.load(ctx, CartKey(companyEmail), &records); err != nil {
		return nil, err
	}

	items := make([]*entity.CartItem, 0, len(records))
	for i := range records {
		item, err := model.ToCartItemDomain(&records[i])
		if err != nil {
			repo.warnSkipped(ctx, CartKey(companyEmail), err)

			continue
		}
		items = append(items, item)
	}

	return items, nil
}

// Save replaces the company's cart.
func (repo *cartRepository) Save(ctx context.Context, companyEmail string, items []*entity.CartItem) error {
	records := make([]model.CartItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, model.FromCartItemDomain(item))
	}

	return repo.save(ctx, CartKey(companyEmail), records)
}

// Clear removes the company's cart.
func (repo *cartRepository) Clear(ctx context.Context, companyEmail string) error {
	return repo.remove(ctx, CartKey(companyEmail))
}

// orderRepository implements repository.OrderRepository on "recyclingOrders".
type orderRepository struct {
	collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store kv.Store, logger *slog.Logger) repository.OrderRepository {
	return &orderRepository{collection{store: store, logger: logger}}
}

func (repo *orderRepository) loadAll(ctx context.Context) ([]*entity.Order, error) {
	var records []model.OrderRecord
	if err := repo.load(ctx, KeyOrders, &records); err != nil {
		return nil, err
	}

	orders := make([]*entity.Order, 0, len(records))
	for i := range records {
		order, err := model.ToOrderDomain(&records[i])
		if err != nil {
			repo.warnSkipped(ctx, KeyOrders, err)

			continue
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (repo *orderRepository) saveAll(ctx context.Context, orders []*entity.Order) error {
	records := make([]model.OrderRecord, 0, len(orders))
	for _, o := range orders {
		records = append(records, model.FromOrderDomain(o))
	}

	return repo.save(ctx, KeyOrders, records)
}

// List returns every order in creation order.
func (repo *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	return repo.loadAll(ctx)
}

// FindByID retrieves an order by id.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	orders, err := repo.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

// Create appends an order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orders, err := repo.loadAll(ctx)
	if err != nil {
		return err
	}

	return repo.saveAll(ctx, append(orders, order))
}

// Update replaces the order with the same id.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orders, err := repo.loadAll(ctx)
	if err != nil {
		return err
	}

	for i, o := range orders {
		if o.ID == order.ID {
			orders[i] = order

			return repo.saveAll(ctx, orders)
		}
	}

	return repository.ErrOrderNotFound
}
