package usecase

import (
	"context"

	"recyclemart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddVoucherInput defines a new voucher.
type AddVoucherInput struct {
	Market   string
	Value    int
	Discount decimal.Decimal
	Currency string
}

// RedeemOutput is the result of exchanging points for a voucher.
type RedeemOutput struct {
	Voucher         *entity.Voucher
	RemainingPoints int
}

// AddProductInput defines a new market product.
type AddProductInput struct {
	Name        string
	Market      string
	Price       decimal.Decimal
	Description string
}

// PurchasePreviewInput lists the products in a customer cart and the voucher credit to spend.
type PurchasePreviewInput struct {
	ProductIDs     []uuid.UUID
	VoucherBalance decimal.Decimal
}

// PurchasePreview is the priced cart with the voucher applied.
type PurchasePreview struct {
	Products  []*entity.MarketProduct
	CartTotal decimal.Decimal
	Discount  entity.DiscountResult
}

// VoucherUsecase defines voucher administration and redemption.
type VoucherUsecase interface {
	List(ctx context.Context) ([]*entity.Voucher, error)
	Add(ctx context.Context, input AddVoucherInput) (*entity.Voucher, error)
	Remove(ctx context.Context, index int) error
	Redeem(ctx context.Context, index int) (*RedeemOutput, error)
	CalculateDiscount(cartTotal, voucherBalance decimal.Decimal) entity.DiscountResult
}

// MarketUsecase defines the customer market where voucher credit is spent.
type MarketUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.MarketProduct, error)
	AddProduct(ctx context.Context, input AddProductInput) (*entity.MarketProduct, error)
	PreviewPurchase(ctx context.Context, input PurchasePreviewInput) (*PurchasePreview, error)
}
