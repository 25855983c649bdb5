package model

import (
	"recyclemart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// MarketProductRecord is the stored form of entity.MarketProduct inside "customerMarketProducts".
type MarketProductRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Market      string          `json:"market"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// ToMarketProductDomain maps a stored product to the entity.
func ToMarketProductDomain(rec *MarketProductRecord) (*entity.MarketProduct, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid market product id %q", rec.ID)
	}

	return &entity.MarketProduct{
		ID:          id,
		Name:        rec.Name,
		Market:      rec.Market,
		Price:       rec.Price,
		Description: rec.Description,
	}, nil
}

// FromMarketProductDomain maps the entity to its stored record.
func FromMarketProductDomain(p *entity.MarketProduct) MarketProductRecord {
	return MarketProductRecord{
		ID:          p.ID.String(),
		Name:        p.Name,
		Market:      p.Market,
		Price:       p.Price,
		Description: p.Description,
	}
}
