package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MarketProduct is an item customers can buy at a partner market with voucher credit.
type MarketProduct struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Market      string          `json:"market"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}
