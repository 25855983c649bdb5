package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ShippingMethod is how a company collects an ordered device.
type ShippingMethod string

const (
	ShippingPickup ShippingMethod = "pickup"
	ShippingVisit  ShippingMethod = "visit"
)

// IsValid checks if the ShippingMethod is a valid value.
func (m ShippingMethod) IsValid() bool {
	return m == ShippingPickup || m == ShippingVisit
}

// CartItem is a company's pending selection of one inventory device.
type CartItem struct {
	DeviceID       uuid.UUID      `json:"device_id"`
	ShippingMethod ShippingMethod `json:"shipping_method"`
	Location       string         `json:"location"`
	Coordinates    *orb.Point     `json:"coordinates,omitempty"` // Lng/lat from the geocoding collaborator.
	AddedAt        time.Time      `json:"added_at"`
}
