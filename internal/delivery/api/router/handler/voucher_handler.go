package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"recyclemart/internal/delivery/api/response"
	"recyclemart/internal/domain/entity"
	"recyclemart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// VoucherHandlerParams holds dependencies for VoucherHandler, injected by Fx.
type VoucherHandlerParams struct {
	fx.In

	VoucherUC usecase.VoucherUsecase
	Logger    *slog.Logger
}

// VoucherHandler handles the voucher catalogue and redemption.
type VoucherHandler struct {
	voucherUC usecase.VoucherUsecase
	logger    *slog.Logger
}

// NewVoucherHandler is the constructor for VoucherHandler.
func NewVoucherHandler(params VoucherHandlerParams) *VoucherHandler {
	return &VoucherHandler{
		voucherUC: params.VoucherUC,
		logger:    params.Logger,
	}
}

// AddVoucherRequest represents the request body for a new voucher
type AddVoucherRequest struct {
	Market   string          `json:"market" validate:"required"`
	Value    int             `json:"value" validate:"gt=0"`
	Discount decimal.Decimal `json:"discount"`
	Currency string          `json:"currency" validate:"omitempty"`
}

// DiscountRequest represents the request body for a discount calculation
type DiscountRequest struct {
	CartTotal      decimal.Decimal `json:"cart_total"`
	VoucherBalance decimal.Decimal `json:"voucher_balance"`
}

// RedeemResponse is the voucher granted and the points left
type RedeemResponse struct {
	Voucher         *entity.Voucher `json:"voucher"`
	RemainingPoints int             `json:"remaining_points"`
}

// List returns the voucher catalogue.
func (h *VoucherHandler) List(c echo.Context) error {
	vouchers, err := h.voucherUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vouchers)
}

// Add appends a voucher to the catalogue (admin).
func (h *VoucherHandler) Add(c echo.Context) error {
	var req AddVoucherRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid voucher input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err.Error())
	}

	voucher, err := h.voucherUC.Add(c.Request().Context(), usecase.AddVoucherInput{
		Market:   req.Market,
		Value:    req.Value,
		Discount: req.Discount,
		Currency: req.Currency,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, voucher)
}

// Remove deletes the voucher at the index path parameter (admin).
func (h *VoucherHandler) Remove(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INDEX", "Voucher index must be an integer")
	}

	if err := h.voucherUC.Remove(c.Request().Context(), index); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Redeem exchanges the caller's points for the voucher at the index path parameter.
func (h *VoucherHandler) Redeem(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INDEX", "Voucher index must be an integer")
	}

	output, err := h.voucherUC.Redeem(c.Request().Context(), index)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RedeemResponse{
		Voucher:         output.Voucher,
		RemainingPoints: output.RemainingPoints,
	})
}

// Discount applies a voucher balance to a cart total.
func (h *VoucherHandler) Discount(c echo.Context) error {
	var req DiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}

	if req.CartTotal.IsNegative() || req.VoucherBalance.IsNegative() {
		return response.ValidationFailed(c, "cart_total and voucher_balance must not be negative")
	}

	return response.Success(c, http.StatusOK, h.voucherUC.CalculateDiscount(req.CartTotal, req.VoucherBalance))
}
