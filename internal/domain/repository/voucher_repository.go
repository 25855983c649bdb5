package repository

import (
	"context"

	"recyclemart/internal/domain/entity"
	"recyclemart/internal/errors"
)

// ErrIndexOutOfRange is returned when a voucher index does not exist.
var ErrIndexOutOfRange = errors.New("voucher index out of range")

// VoucherRepository stores admin vouchers in insertion order.
type VoucherRepository interface {
	// List returns the vouchers in insertion order.
	List(ctx context.Context) ([]*entity.Voucher, error)

	// Add appends a voucher.
	Add(ctx context.Context, voucher *entity.Voucher) error

	// RemoveAt deletes the voucher at index.
	RemoveAt(ctx context.Context, index int) error
}
