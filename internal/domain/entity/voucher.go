package entity

import "github.com/shopspring/decimal"

// DefaultCurrency is used when a voucher is created without a currency symbol.
const DefaultCurrency = "$"

// Voucher is an admin-defined exchange rate between points and a market discount.
type Voucher struct {
	Market   string          `json:"market"`
	Value    int             `json:"value"`    // Points required, > 0.
	Discount decimal.Decimal `json:"discount"` // Currency amount granted, > 0.
	Currency string          `json:"currency"` // Single character symbol.
}

// NormalizeCurrency keeps the first character of s, defaulting to DefaultCurrency.
func NormalizeCurrency(s string) string {
	for _, r := range s {
		if r == ' ' || r == '\t' {
			continue
		}

		return string(r)
	}

	return DefaultCurrency
}

// DiscountResult is the allocation of a voucher balance against a cart total.
type DiscountResult struct {
	DiscountApplied         decimal.Decimal `json:"discount_applied"`
	RemainingCartAmount     decimal.Decimal `json:"remaining_cart_amount"`
	RemainingVoucherBalance decimal.Decimal `json:"remaining_voucher_balance"`
	CanProceedToPurchase    bool            `json:"can_proceed_to_purchase"`
}

// CalculateDiscount allocates voucherBalance against cartTotal. An insufficient
// balance only shrinks the discount; checkout is never blocked.
func CalculateDiscount(cartTotal, voucherBalance decimal.Decimal) DiscountResult {
	return DiscountResult{
		DiscountApplied:         decimal.Min(cartTotal, voucherBalance),
		RemainingCartAmount:     decimal.Max(decimal.Zero, cartTotal.Sub(voucherBalance)),
		RemainingVoucherBalance: decimal.Max(decimal.Zero, voucherBalance.Sub(cartTotal)),
		CanProceedToPurchase:    true,
	}
}
