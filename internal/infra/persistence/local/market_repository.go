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

// marketProductRepository implements repository.MarketProductRepository on "customerMarketProducts".
type marketProductRepository struct {
	collection
}

// NewMarketProductRepository is the constructor for marketProductRepository.
func NewMarketProductRepository(store kv.Store, logger *slog.Logger) repository.MarketProductRepository {
	return &marketProductRepository{collection{store: store, logger: logger}}
}

// List returns the products in insertion order.
func (repo *marketProductRepository) List(ctx context.Context) ([]*entity.MarketProduct, error) {
	var records []model.MarketProductRecord
	if err := repo.load(ctx, KeyMarketProducts, &records); err != nil {
		return nil, err
	}

	products := make([]*entity.MarketProduct, 0, len(records))
	for i := range records {
		p, err := model.ToMarketProductDomain(&records[i])
		if err != nil {
			repo.warnSkipped(ctx, KeyMarketProducts, err)

			continue
		}
		products = append(products, p)
	}

	return products, nil
}

// FindByID retrieves a product by id.
func (repo *marketProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MarketProduct, error) {
	products, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

// Create appends a product.
func (repo *marketProductRepository) Create(ctx context.Context, product *entity.MarketProduct) error {
	products, err := repo.List(ctx)
	if err != nil {
		return err
	}

	records := make([]model.MarketProductRecord, 0, len(products)+1)
	for _, p := range append(products, product) {
		records = append(records, model.FromMarketProductDomain(p))
	}

	return repo.save(ctx, KeyMarketProducts, records)
}
