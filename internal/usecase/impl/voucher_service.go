package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"recyclemart/internal/domain/entity"
	domainerrors "recyclemart/internal/domain/errors"
	"recyclemart/internal/domain/repository"
	"recyclemart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// voucherService implements the VoucherUsecase interface.
type voucherService struct {
	gate        usecase.SessionUsecase
	voucherRepo repository.VoucherRepository
	txManager   repository.TransactionManager
	logger      *slog.Logger
}

// VoucherServiceParams holds dependencies for VoucherService, injected by Fx.
type VoucherServiceParams struct {
	fx.In

	Gate        usecase.SessionUsecase
	VoucherRepo repository.VoucherRepository
	TxManager   repository.TransactionManager
	Logger      *slog.Logger
}

// NewVoucherService is the constructor for voucherService.
func NewVoucherService(params VoucherServiceParams) usecase.VoucherUsecase {
	return &voucherService{
		gate:        params.Gate,
		voucherRepo: params.VoucherRepo,
		txManager:   params.TxManager,
		logger:      params.Logger,
	}
}

func (srv *voucherService) log(ctx context.Context) *slog.Logger {
	return loggerFrom(ctx, srv.logger)
}

// List returns the vouchers in insertion order. Any logged-in user may browse them.
func (srv *voucherService) List(ctx context.Context) ([]*entity.Voucher, error) {
	if _, err := srv.gate.Require(ctx); err != nil {
		return nil, err
	}

	vouchers, err := srv.voucherRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vouchers")
	}

	return vouchers, nil
}

// Add appends a voucher. Admin only.
func (srv *voucherService) Add(ctx context.Context, input usecase.AddVoucherInput) (*entity.Voucher, error) {
	if _, err := srv.gate.Require(ctx, entity.RoleAdmin); err != nil {
		return nil, err
	}

	market := strings.TrimSpace(input.Market)
	switch {
	case market == "":
		return nil, validationError("market is required")
	case input.Value <= 0:
		return nil, validationError("value must be greater than zero")
	case !input.Discount.IsPositive():
		return nil, validationError("discount must be greater than zero")
	}

	voucher := &entity.Voucher{
		Market:   market,
		Value:    input.Value,
		Discount: input.Discount,
		Currency: entity.NormalizeCurrency(input.Currency),
	}
	if err := srv.voucherRepo.Add(ctx, voucher); err != nil {
		return nil, mapRepoError(err, "failed to add voucher")
	}

	srv.log(ctx).Info("Voucher added", slog.String("market", voucher.Market), slog.Int("value", voucher.Value))

	return voucher, nil
}

// Remove deletes the voucher at index. Admin only.
func (srv *voucherService) Remove(ctx context.Context, index int) error {
	if _, err := srv.gate.Require(ctx, entity.RoleAdmin); err != nil {
		return err
	}

	if err := srv.voucherRepo.RemoveAt(ctx, index); err != nil {
		return mapRepoError(err, "failed to remove voucher")
	}

	return nil
}

// Redeem exchanges the caller's points for the voucher at index.
func (srv *voucherService) Redeem(ctx context.Context, index int) (*usecase.RedeemOutput, error) {
	actor, err := srv.gate.Require(ctx, entity.RoleCustomer)
	if err != nil {
		return nil, err
	}

	vouchers, err := srv.voucherRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vouchers")
	}
	if index < 0 || index >= len(vouchers) {
		return nil, errors.Wrap(domainerrors.ErrIndexOutOfRange, "failed to redeem voucher")
	}
	voucher := vouchers[index]

	var remaining int
	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		user, err := txRepoFactory.UserRepo().FindByEmail(ctx, actor.Email)
		if err != nil {
			return err
		}
		if user.Profile.Points < voucher.Value {
			return domainerrors.ErrInsufficientPoints.WithDetails(
				fmt.Sprintf("need %d points, have %d", voucher.Value, user.Profile.Points))
		}

		remaining, err = txRepoFactory.UserRepo().AwardPoints(ctx, actor.Email, -voucher.Value)

		return err
	})
	if err != nil {
		return nil, mapRepoError(err, "failed to redeem voucher")
	}

	srv.log(ctx).Info("Voucher redeemed",
		slog.String("email", actor.Email),
		slog.String("market", voucher.Market),
		slog.Int("remainingPoints", remaining),
	)

	return &usecase.RedeemOutput{Voucher: voucher, RemainingPoints: remaining}, nil
}

// CalculateDiscount allocates a voucher balance against a cart total.
func (srv *voucherService) CalculateDiscount(cartTotal, voucherBalance decimal.Decimal) entity.DiscountResult {
	return entity.CalculateDiscount(cartTotal, voucherBalance)
}
