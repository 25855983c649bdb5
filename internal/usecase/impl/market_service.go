package impl

import (
	"context"
	"log/slog"
	"strings"

	"recyclemart/internal/domain/entity"
	"recyclemart/internal/domain/repository"
	"recyclemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// marketService implements the MarketUsecase interface.
type marketService struct {
	gate        usecase.SessionUsecase
	productRepo repository.MarketProductRepository
	logger      *slog.Logger
}

// MarketServiceParams holds dependencies for MarketService, injected by Fx.
type MarketServiceParams struct {
	fx.In

	Gate        usecase.SessionUsecase
	ProductRepo repository.MarketProductRepository
	Logger      *slog.Logger
}

// NewMarketService is the constructor for marketService.
func NewMarketService(params MarketServiceParams) usecase.MarketUsecase {
	return &marketService{
		gate:        params.Gate,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *marketService) log(ctx context.Context) *slog.Logger {
	return loggerFrom(ctx, srv.logger)
}

// ListProducts returns the market catalogue.
func (srv *marketService) ListProducts(ctx context.Context) ([]*entity.MarketProduct, error) {
	if _, err := srv.gate.Require(ctx); err != nil {
		return nil, err
	}

	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// AddProduct appends a product to the catalogue. Admin only.
func (srv *marketService) AddProduct(ctx context.Context, input usecase.AddProductInput) (*entity.MarketProduct, error) {
	if _, err := srv.gate.Require(ctx, entity.RoleAdmin); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	market := strings.TrimSpace(input.Market)
	switch {
	case name == "":
		return nil, validationError("product name is required")
	case market == "":
		return nil, validationError("market is required")
	case !input.Price.IsPositive():
		return nil, validationError("price must be greater than zero")
	}

	product := &entity.MarketProduct{
		ID:          uuid.New(),
		Name:        name,
		Market:      market,
		Price:       input.Price,
		Description: strings.TrimSpace(input.Description),
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, mapRepoError(err, "failed to add product")
	}

	srv.log(ctx).Info("Market product added", slog.String("productID", product.ID.String()), slog.String("market", market))

	return product, nil
}

// PreviewPurchase prices the selected products and applies the voucher balance.
// A product listed twice is counted twice.
func (srv *marketService) PreviewPurchase(ctx context.Context, input usecase.PurchasePreviewInput) (*usecase.PurchasePreview, error) {
	if _, err := srv.gate.Require(ctx, entity.RoleCustomer); err != nil {
		return nil, err
	}
	if input.VoucherBalance.IsNegative() {
		return nil, validationError("voucher balance must not be negative")
	}

	products := make([]*entity.MarketProduct, 0, len(input.ProductIDs))
	total := decimal.Zero
	for _, id := range input.ProductIDs {
		product, err := srv.productRepo.FindByID(ctx, id)
		if err != nil {
			return nil, mapRepoError(err, "failed to price purchase")
		}
		products = append(products, product)
		total = total.Add(product.Price)
	}

	return &usecase.PurchasePreview{
		Products:  products,
		CartTotal: total,
		Discount:  entity.CalculateDiscount(total, input.VoucherBalance),
	}, nil
}
