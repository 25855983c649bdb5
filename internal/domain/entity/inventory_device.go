package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeviceType classifies inventory devices.
type DeviceType string

const (
	DeviceSmartphone DeviceType = "Smartphone"
	DeviceLaptop     DeviceType = "Laptop"
	DeviceTablet     DeviceType = "Tablet"
	DeviceOther      DeviceType = "Other"
)

// ParseDeviceType maps free-form request types onto the inventory set.
// Anything unrecognised becomes DeviceOther.
func ParseDeviceType(s string) DeviceType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "smartphone", "phone", "mobile":
		return DeviceSmartphone
	case "laptop", "notebook":
		return DeviceLaptop
	case "tablet":
		return DeviceTablet
	default:
		return DeviceOther
	}
}

// IsValid checks if the DeviceType is a valid value.
func (t DeviceType) IsValid() bool {
	switch t {
	case DeviceSmartphone, DeviceLaptop, DeviceTablet, DeviceOther:
		return true
	default:
		return false
	}
}

// Condition describes the physical state of a device.
type Condition string

const (
	ConditionNew       Condition = "New"
	ConditionLikeNew   Condition = "Like-New"
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
	ConditionPoor      Condition = "Poor"
)

// IsValid reports whether c belongs to the inventory condition set.
func (c Condition) IsValid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return true
	default:
		return false
	}
}

// Rank orders conditions best first. Excellent shares the Like-New slot;
// unknown values sort after Poor.
func (c Condition) Rank() int {
	switch c {
	case ConditionNew:
		return 0
	case ConditionLikeNew, ConditionExcellent:
		return 1
	case ConditionGood:
		return 2
	case ConditionFair:
		return 3
	case ConditionPoor:
		return 4
	default:
		return 5
	}
}

// DeviceStatus is the availability of an inventory device.
type DeviceStatus string

const (
	DeviceAvailable DeviceStatus = "available"
	DeviceOrdered   DeviceStatus = "ordered"
)

// OrderInfo links an ordered device to the order that claimed it.
type OrderInfo struct {
	OrderID   uuid.UUID `json:"order_id"`
	OrderedAt time.Time `json:"ordered_at"`
}

// InventoryDevice is a processed device offered to recycling companies.
// OrderInfo is set exactly when Status is DeviceOrdered.
type InventoryDevice struct {
	ID              uuid.UUID         `json:"id"`
	Type            DeviceType        `json:"type"`
	Brand           string            `json:"brand"`
	Model           string            `json:"model"`
	Description     string            `json:"description"`
	Condition       Condition         `json:"condition"`
	Specs           map[string]string `json:"specs"`
	ReceivedDate    time.Time         `json:"received_date"`
	Value           decimal.Decimal   `json:"value"`
	PointsAwarded   int               `json:"points_awarded"`
	OwnerEmail      string            `json:"owner_email"`
	SourceRequestID *uuid.UUID        `json:"source_request_id,omitempty"`
	Status          DeviceStatus      `json:"status"`
	OrderInfo       *OrderInfo        `json:"order_info"`
}

// Name is the display name used by search and listings.
func (d *InventoryDevice) Name() string {
	return strings.TrimSpace(d.Brand + " " + d.Model)
}

// IsAvailable reports whether the device can still be added to a cart.
func (d *InventoryDevice) IsAvailable() bool {
	return d.Status == DeviceAvailable
}
