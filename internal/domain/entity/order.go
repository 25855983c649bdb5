package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
)

// OrderStatus is the state of a company order.
type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCanceled   OrderStatus = "canceled"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderProcessing, OrderCompleted, OrderCanceled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether next is reachable from s. Only processing orders move.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return s == OrderProcessing && (next == OrderCompleted || next == OrderCanceled)
}

// Order event types.
const (
	EventOrderCreated   = "order_created"
	EventOrderCompleted = "order_completed"
	EventOrderCanceled  = "order_canceled"
)

// EventTypeFor returns the timeline event type recorded when an order enters status.
func EventTypeFor(status OrderStatus) string {
	switch status {
	case OrderCompleted:
		return EventOrderCompleted
	case OrderCanceled:
		return EventOrderCanceled
	default:
		return EventOrderCreated
	}
}

// OrderEvent is one entry of an order's append-only timeline.
type OrderEvent struct {
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// OrderItem is a snapshot of a cart item and its device taken at checkout.
// It never changes after the order is created.
type OrderItem struct {
	DeviceID       uuid.UUID         `json:"device_id"`
	ShippingMethod ShippingMethod    `json:"shipping_method"`
	Location       string            `json:"location"`
	Coordinates    *orb.Point        `json:"coordinates,omitempty"`
	DistanceKm     *float64          `json:"distance_km,omitempty"` // From the depot, when coordinates are known.
	Type           DeviceType        `json:"type"`
	Brand          string            `json:"brand"`
	Model          string            `json:"model"`
	Condition      Condition         `json:"condition"`
	Specs          map[string]string `json:"specs"`
	Value          decimal.Decimal   `json:"value"`
}

// Order is a finalized company checkout.
type Order struct {
	ID           uuid.UUID       `json:"id"`
	CompanyEmail string          `json:"company_email"`
	CreatedAt    time.Time       `json:"created_at"`
	Status       OrderStatus     `json:"status"`
	Items        []OrderItem     `json:"items"`
	PickupDate   *time.Time      `json:"pickup_date"`
	Notes        string          `json:"notes"`
	Total        decimal.Decimal `json:"total"`
	Events       []OrderEvent    `json:"events"`
}

// AppendEvent adds an event to the timeline, never letting its date precede the last entry.
func (o *Order) AppendEvent(eventType string, at time.Time, description string) {
	if n := len(o.Events); n > 0 && at.Before(o.Events[n-1].Date) {
		at = o.Events[n-1].Date
	}
	o.Events = append(o.Events, OrderEvent{Type: eventType, Date: at, Description: description})
}

// SnapshotItem deep-copies a cart item and its device into an order item.
func SnapshotItem(item *CartItem, device *InventoryDevice) OrderItem {
	snapshot := OrderItem{
		DeviceID:       item.DeviceID,
		ShippingMethod: item.ShippingMethod,
		Location:       item.Location,
		Type:           device.Type,
		Brand:          device.Brand,
		Model:          device.Model,
		Condition:      device.Condition,
		Value:          device.Value,
	}
	if item.Coordinates != nil {
		point := *item.Coordinates
		snapshot.Coordinates = &point
	}
	if device.Specs != nil {
		snapshot.Specs = make(map[string]string, len(device.Specs))
		for k, v := range device.Specs {
			snapshot.Specs[k] = v
		}
	}

	return snapshot
}
