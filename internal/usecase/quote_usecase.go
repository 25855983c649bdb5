package usecase

import (
	"context"

	"recyclemart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubmitRequestInput defines a device offered for recycling.
type SubmitRequestInput struct {
	DeviceType        string
	Brand             string
	Model             string
	DeviceDescription string
	Condition         entity.Condition
	Images            []string
}

// QuoteUsecase defines recycle request intake and the admin quoting workflow.
type QuoteUsecase interface {
	Submit(ctx context.Context, input SubmitRequestInput) (uuid.UUID, error)
	ListMine(ctx context.Context) ([]*entity.RecycleRequest, error)
	ListAll(ctx context.Context) ([]*entity.RecycleRequest, error)
	Recent(ctx context.Context, limit int) ([]*entity.RecycleRequest, error)
	SetQuote(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*entity.RecycleRequest, error)
	SetStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) (*entity.RecycleRequest, error)
}
