package local

import (
	"context"
	"log/slog"

	"recyclemart/internal/domain/entity"
	"recyclemart/internal/domain/repository"
	"recyclemart/internal/infra/persistence/kv"
	"recyclemart/internal/infra/persistence/model"
)

// voucherRepository implements repository.VoucherRepository on "adminVouchers".
type voucherRepository struct {
	collection
}

// NewVoucherRepository is the constructor for voucherRepository.
func NewVoucherRepository(store kv.Store, logger *slog.Logger) repository.VoucherRepository {
	return &voucherRepository{collection{store: store, logger: logger}}
}

// loadAll normalizes every stored voucher and drops the ones that cannot be repaired.
func (repo *voucherRepository) loadAll(ctx context.Context) ([]*entity.Voucher, error) {
	var records []model.VoucherRecord
	if err := repo.load(ctx, KeyVouchers, &records); err != nil {
		return nil, err
	}

	vouchers := make([]*entity.Voucher, 0, len(records))
	for i := range records {
		v, err := model.ToVoucherDomain(&records[i])
		if err != nil {
			repo.warnSkipped(ctx, KeyVouchers, err)

			continue
		}
		vouchers = append(vouchers, v)
	}

	return vouchers, nil
}

func (repo *voucherRepository) saveAll(ctx context.Context, vouchers []*entity.Voucher) error {
	records := make([]model.VoucherRecord, 0, len(vouchers))
	for _, v := range vouchers {
		records = append(records, model.FromVoucherDomain(v))
	}

	return repo.save(ctx, KeyVouchers, records)
}

// List returns vouchers in insertion order.
func (repo *voucherRepository) List(ctx context.Context) ([]*entity.Voucher, error) {
	return repo.loadAll(ctx)
}

// Add appends a voucher.
func (repo *voucherRepository) Add(ctx context.Context, voucher *entity.Voucher) error {
	vouchers, err := repo.loadAll(ctx)
	if err != nil {
		return err
	}

	return repo.saveAll(ctx, append(vouchers, voucher))
}

// RemoveAt deletes the voucher at index of the normalized list.
func (repo *voucherRepository) RemoveAt(ctx context.Context, index int) error {
	vouchers, err := repo.loadAll(ctx)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(vouchers) {
		return repository.ErrIndexOutOfRange
	}

	return repo.saveAll(ctx, append(vouchers[:index], vouchers[index+1:]...))
}
