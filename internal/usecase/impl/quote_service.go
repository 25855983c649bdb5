package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"recyclemart/config"
	"recyclemart/internal/domain/entity"
	domainerrors "recyclemart/internal/domain/errors"
	"recyclemart/internal/domain/repository"
	"recyclemart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// quoteService implements the QuoteUsecase interface.
type quoteService struct {
	gate        usecase.SessionUsecase
	requestRepo repository.RecycleRequestRepository
	txManager   repository.TransactionManager
	cfg         *config.QuotesConfig
	logger      *slog.Logger
	now         func() time.Time
}

// QuoteServiceParams holds dependencies for QuoteService, injected by Fx.
type QuoteServiceParams struct {
	fx.In

	Gate        usecase.SessionUsecase
	RequestRepo repository.RecycleRequestRepository
	TxManager   repository.TransactionManager
	Config      *config.Config
	Logger      *slog.Logger
}

// NewQuoteService is the constructor for quoteService.
func NewQuoteService(params QuoteServiceParams) usecase.QuoteUsecase {
	return &quoteService{
		gate:        params.Gate,
		requestRepo: params.RequestRepo,
		txManager:   params.TxManager,
		cfg:         params.Config.Quotes,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *quoteService) log(ctx context.Context) *slog.Logger {
	return loggerFrom(ctx, srv.logger)
}

// Submit files a new Pending request for the calling customer.
func (srv *quoteService) Submit(ctx context.Context, input usecase.SubmitRequestInput) (uuid.UUID, error) {
	actor, err := srv.gate.Require(ctx, entity.RoleCustomer)
	if err != nil {
		return uuid.Nil, err
	}

	deviceType := strings.TrimSpace(input.DeviceType)
	description := strings.TrimSpace(input.DeviceDescription)
	switch {
	case deviceType == "":
		return uuid.Nil, validationError("device type is required")
	case description == "":
		return uuid.Nil, validationError("device description is required")
	case !input.Condition.IsValid():
		return uuid.Nil, validationError(fmt.Sprintf("unknown condition %q", input.Condition))
	}

	images := make([]string, 0, len(input.Images))
	for _, image := range input.Images {
		if image != "" {
			images = append(images, image)
		}
	}
	if len(images) > srv.cfg.MaxImages {
		return uuid.Nil, validationError(fmt.Sprintf("at most %d images may be attached", srv.cfg.MaxImages))
	}

	now := srv.now()
	request := &entity.RecycleRequest{
		ID:                uuid.New(),
		OwnerEmail:        actor.Email,
		DeviceType:        deviceType,
		Brand:             strings.TrimSpace(input.Brand),
		Model:             strings.TrimSpace(input.Model),
		DeviceDescription: description,
		Condition:         input.Condition,
		Status:            entity.RequestPending,
		SubmittedImages:   images,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := srv.requestRepo.Submit(ctx, request); err != nil {
		return uuid.Nil, mapRepoError(err, "failed to submit request")
	}

	srv.log(ctx).Info("Recycle request submitted",
		slog.String("requestID", request.ID.String()),
		slog.String("owner", actor.Email),
		slog.Int("images", len(images)),
	)

	return request.ID, nil
}

// ListMine returns the caller's requests in submission order.
func (srv *quoteService) ListMine(ctx context.Context) ([]*entity.RecycleRequest, error) {
	actor, err := srv.gate.Require(ctx, entity.RoleCustomer)
	if err != nil {
		return nil, err
	}

	requests, err := srv.requestRepo.ListByOwner(ctx, actor.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	return requests, nil
}

// ListAll returns every request. Admin only.
func (srv *quoteService) ListAll(ctx context.Context) ([]*entity.RecycleRequest, error) {
	if _, err := srv.gate.Require(ctx, entity.RoleAdmin); err != nil {
		return nil, err
	}

	requests, err := srv.requestRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	return requests, nil
}

// Recent returns the newest requests first. Zero-dated records sort last.
func (srv *quoteService) Recent(ctx context.Context, limit int) ([]*entity.RecycleRequest, error) {
	requests, err := srv.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = srv.cfg.RecentLimit
	}

	slices.SortStableFunc(requests, func(a, b *entity.RecycleRequest) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(requests) > limit {
		requests = requests[:limit]
	}

	return requests, nil
}

// SetQuote prices a Pending or Quoted request and moves it to Quoted.
func (srv *quoteService) SetQuote(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*entity.RecycleRequest, error) {
	if _, err := srv.gate.Require(ctx, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, validationError("quote amount must be greater than zero")
	}

	var request *entity.RecycleRequest
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		var err error
		request, err = txRepoFactory.RequestRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if request.Status.IsTerminal() {
			return domainerrors.ErrInvalidTransition.WithDetails(
				fmt.Sprintf("cannot quote a %s request", request.Status))
		}

		quote := amount
		request.QuoteAmount = &quote
		request.Status = entity.RequestQuoted
		request.UpdatedAt = srv.now()
		if err := txRepoFactory.RequestRepo().Update(ctx, request); err != nil {
			return err
		}

		return txRepoFactory.NotificationRepo().Append(ctx, request.OwnerEmail, newNotification(
			entity.NotificationQuoteReady,
			fmt.Sprintf("Your %s has been quoted at %s", request.DeviceType, amount.StringFixed(2)),
			request.UpdatedAt,
		))
	})
	if err != nil {
		return nil, mapRepoError(err, "failed to set quote")
	}

	srv.log(ctx).Info("Request quoted", slog.String("requestID", id.String()), slog.String("amount", amount.String()))

	return request, nil
}

// SetStatus moves a request along Pending -> {Quoted, Rejected}, Quoted -> {Completed, Rejected}.
// Completing a request registers the device in the inventory and rewards its owner.
func (srv *quoteService) SetStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) (*entity.RecycleRequest, error) {
	if _, err := srv.gate.Require(ctx, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, validationError(fmt.Sprintf("unknown status %q", status))
	}

	var (
		request *entity.RecycleRequest
		points  int
	)
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		var err error
		request, err = txRepoFactory.RequestRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !request.Status.CanTransitionTo(status) {
			return domainerrors.ErrInvalidTransition.WithDetails(
				fmt.Sprintf("%s -> %s", request.Status, status))
		}
		if status == entity.RequestQuoted && request.QuoteAmount == nil {
			return domainerrors.ErrValidationFailed.WithDetails("a quote amount must be set before quoting")
		}

		request.Status = status
		request.UpdatedAt = srv.now()
		if err := txRepoFactory.RequestRepo().Update(ctx, request); err != nil {
			return err
		}

		switch status {
		case entity.RequestCompleted:
			points, err = srv.complete(ctx, txRepoFactory, request)

			return err
		case entity.RequestRejected:
			return txRepoFactory.NotificationRepo().Append(ctx, request.OwnerEmail, newNotification(
				entity.NotificationRequestRejected,
				fmt.Sprintf("Your %s request was rejected", request.DeviceType),
				request.UpdatedAt,
			))
		default:
			return nil
		}
	})
	if err != nil {
		return nil, mapRepoError(err, "failed to set request status")
	}

	srv.log(ctx).Info("Request status changed",
		slog.String("requestID", id.String()),
		slog.String("status", status.String()),
		slog.Int("pointsAwarded", points),
	)

	return request, nil
}

// complete registers the device of a completed request and awards the owner.
func (srv *quoteService) complete(ctx context.Context, txRepoFactory repository.RepositoryFactory, request *entity.RecycleRequest) (int, error) {
	value := decimal.Zero
	if request.QuoteAmount != nil {
		value = *request.QuoteAmount
	}
	points := int(value.Mul(decimal.NewFromFloat(srv.cfg.PointsPerCurrencyUnit)).Floor().IntPart())

	sourceID := request.ID
	device := &entity.InventoryDevice{
		ID:              uuid.New(),
		Type:            entity.ParseDeviceType(request.DeviceType),
		Brand:           request.Brand,
		Model:           request.Model,
		Description:     request.DeviceDescription,
		Condition:       request.Condition,
		Specs:           map[string]string{},
		ReceivedDate:    request.UpdatedAt,
		Value:           value,
		PointsAwarded:   points,
		OwnerEmail:      request.OwnerEmail,
		SourceRequestID: &sourceID,
		Status:          entity.DeviceAvailable,
	}
	if err := txRepoFactory.InventoryRepo().Create(ctx, device); err != nil {
		return 0, err
	}

	total, err := txRepoFactory.UserRepo().AwardPoints(ctx, request.OwnerEmail, points)
	if err != nil {
		return 0, err
	}

	return points, txRepoFactory.NotificationRepo().Append(ctx, request.OwnerEmail, newNotification(
		entity.NotificationRequestComplete,
		fmt.Sprintf("Your %s was recycled: %d points awarded, balance %d", request.DeviceType, points, total),
		request.UpdatedAt,
	))
}
