package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestStatus is the lifecycle state of a recycle request.
type RequestStatus string

const (
	RequestPending   RequestStatus = "Pending"
	RequestQuoted    RequestStatus = "Quoted"
	RequestCompleted RequestStatus = "Completed"
	RequestRejected  RequestStatus = "Rejected"
)

// requestTransitions lists the forward moves allowed from each status.
// Completed and Rejected are terminal.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending: {RequestQuoted, RequestRejected},
	RequestQuoted:  {RequestCompleted, RequestRejected},
}

// IsValid checks if the status is one of the known values.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestPending, RequestQuoted, RequestCompleted, RequestRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestCompleted || s == RequestRejected
}

// CanTransitionTo reports whether moving from s to next keeps the status monotonic.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// RecycleRequest is a customer's device submission awaiting a quote.
type RecycleRequest struct {
	ID                uuid.UUID        `json:"id"`
	OwnerEmail        string           `json:"owner_email"` // Back-reference for lookup, not ownership.
	DeviceType        string           `json:"device_type"`
	Brand             string           `json:"brand,omitempty"`
	Model             string           `json:"model,omitempty"`
	DeviceDescription string           `json:"device_description"`
	Condition         Condition        `json:"condition"`
	Status            RequestStatus    `json:"status"`
	QuoteAmount       *decimal.Decimal `json:"quote_amount"` // Nil until the request is quoted.
	SubmittedImages   []string         `json:"submitted_images"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// String returns the string representation of the RequestStatus.
func (s RequestStatus) String() string {
	return string(s)
}
