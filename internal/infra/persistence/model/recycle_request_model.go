package model

import (
	"recyclemart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// RecycleRequestRecord is the stored form of entity.RecycleRequest.
type RecycleRequestRecord struct {
	ID                string           `json:"id"`
	DeviceType        string           `json:"deviceType"`
	Brand             string           `json:"brand,omitempty"`
	Model             string           `json:"model,omitempty"`
	DeviceDescription string           `json:"deviceDescription"`
	Condition         string           `json:"condition"`
	Status            string           `json:"status"`
	QuoteAmount       *decimal.Decimal `json:"quoteAmount"`
	SubmittedImages   []string         `json:"submittedImages"`
	CreatedAt         string           `json:"createdAt"`
	UpdatedAt         string           `json:"updatedAt,omitempty"`
}

// ToRecycleRequestDomain maps a stored request to the entity. Unknown statuses read as Pending.
func ToRecycleRequestDomain(ownerEmail string, rec *RecycleRequestRecord) (*entity.RecycleRequest, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid recycle request id %q", rec.ID)
	}

	status := entity.RequestStatus(rec.Status)
	if !status.IsValid() {
		status = entity.RequestPending
	}

	var quote *decimal.Decimal
	if rec.QuoteAmount != nil {
		q := *rec.QuoteAmount
		quote = &q
	}

	createdAt := ParseTime(rec.CreatedAt)
	updatedAt := ParseTime(rec.UpdatedAt)
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	return &entity.RecycleRequest{
		ID:                id,
		OwnerEmail:        ownerEmail,
		DeviceType:        rec.DeviceType,
		Brand:             rec.Brand,
		Model:             rec.Model,
		DeviceDescription: rec.DeviceDescription,
		Condition:         entity.Condition(rec.Condition),
		Status:            status,
		QuoteAmount:       quote,
		SubmittedImages:   append([]string(nil), rec.SubmittedImages...),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}, nil
}

// FromRecycleRequestDomain maps the entity to its stored record.
func FromRecycleRequestDomain(req *entity.RecycleRequest) RecycleRequestRecord {
	var quote *decimal.Decimal
	if req.QuoteAmount != nil {
		q := *req.QuoteAmount
		quote = &q
	}

	return RecycleRequestRecord{
		ID:                req.ID.String(),
		DeviceType:        req.DeviceType,
		Brand:             req.Brand,
		Model:             req.Model,
		DeviceDescription: req.DeviceDescription,
		Condition:         string(req.Condition),
		Status:            string(req.Status),
		QuoteAmount:       quote,
		SubmittedImages:   append(make([]string, 0, len(req.SubmittedImages)), req.SubmittedImages...),
		CreatedAt:         FormatTime(req.CreatedAt),
		UpdatedAt:         FormatTime(req.UpdatedAt),
	}
}
