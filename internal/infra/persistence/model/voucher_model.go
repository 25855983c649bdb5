package model

import (
	"recyclemart/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// VoucherRecord is the stored form of entity.Voucher inside "adminVouchers".
type VoucherRecord struct {
	Market   string          `json:"market"`
	Value    int             `json:"value"`
	Discount decimal.Decimal `json:"discount"`
	Currency string          `json:"currency"`
}

// ToVoucherDomain normalizes a stored voucher. Records with a non-positive value or discount
// are rejected so the caller can drop them.
func ToVoucherDomain(rec *VoucherRecord) (*entity.Voucher, error) {
	if rec.Value <= 0 {
		return nil, errors.Errorf("voucher %q has non-positive value %d", rec.Market, rec.Value)
	}
	if !rec.Discount.IsPositive() {
		return nil, errors.Errorf("voucher %q has non-positive discount %s", rec.Market, rec.Discount)
	}

	return &entity.Voucher{
		Market:   rec.Market,
		Value:    rec.Value,
		Discount: rec.Discount,
		Currency: entity.NormalizeCurrency(rec.Currency),
	}, nil
}

// FromVoucherDomain maps the entity to its stored record.
func FromVoucherDomain(v *entity.Voucher) VoucherRecord {
	return VoucherRecord{
		Market:   v.Market,
		Value:    v.Value,
		Discount: v.Discount,
		Currency: entity.NormalizeCurrency(v.Currency),
	}
}
