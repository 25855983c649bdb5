package handler

import (
	"log/slog"
	"net/http"

	"recyclemart/internal/delivery/api/response"
	"recyclemart/internal/domain/entity"
	"recyclemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// MarketHandlerParams holds dependencies for MarketHandler, injected by Fx.
type MarketHandlerParams struct {
	fx.In

	MarketUC usecase.MarketUsecase
	Logger   *slog.Logger
}

// MarketHandler handles the customer market.
type MarketHandler struct {
	marketUC usecase.MarketUsecase
	logger   *slog.Logger
}

// NewMarketHandler is the constructor for MarketHandler.
func NewMarketHandler(params MarketHandlerParams) *MarketHandler {
	return &MarketHandler{
		marketUC: params.MarketUC,
		logger:   params.Logger,
	}
}

// AddProductRequest represents the request body for a new market product
type AddProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Market      string          `json:"market" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// PreviewRequest represents the request body for a purchase preview
type PreviewRequest struct {
	ProductIDs     []uuid.UUID     `json:"product_ids" validate:"required,min=1"`
	VoucherBalance decimal.Decimal `json:"voucher_balance"`
}

// PreviewResponse is the priced cart with the voucher applied
type PreviewResponse struct {
	Products  []*entity.MarketProduct `json:"products"`
	CartTotal decimal.Decimal         `json:"cart_total"`
	Discount  entity.DiscountResult   `json:"discount"`
}

// ListProducts returns the market catalogue.
func (h *MarketHandler) ListProducts(c echo.Context) error {
	products, err := h.marketUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// AddProduct adds a product to the catalogue (admin).
func (h *MarketHandler) AddProduct(c echo.Context) error {
	var req AddProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err.Error())
	}

	product, err := h.marketUC.AddProduct(c.Request().Context(), usecase.AddProductInput{
		Name:        req.Name,
		Market:      req.Market,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// Preview prices a customer cart against a voucher balance.
func (h *MarketHandler) Preview(c echo.Context) error {
	var req PreviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preview input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err.Error())
	}

	if req.VoucherBalance.IsNegative() {
		return response.ValidationFailed(c, "voucher_balance must not be negative")
	}

	preview, err := h.marketUC.PreviewPurchase(c.Request().Context(), usecase.PurchasePreviewInput{
		ProductIDs:     req.ProductIDs,
		VoucherBalance: req.VoucherBalance,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PreviewResponse{
		Products:  preview.Products,
		CartTotal: preview.CartTotal,
		Discount:  preview.Discount,
	})
}
