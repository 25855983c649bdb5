package model

import (
	"maps"

	"recyclemart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// InventoryDeviceRecord is the stored form of entity.InventoryDevice inside "recyclingDevices".
type InventoryDeviceRecord struct {
	ID              string            `json:"id"`
	Type            string            `json:"type"`
	Brand           string            `json:"brand"`
	Model           string            `json:"model"`
	Description     string            `json:"description,omitempty"`
	Condition       string            `json:"condition"`
	Specs           map[string]string `json:"specs"`
	ReceivedDate    string            `json:"receivedDate"`
	Value           decimal.Decimal   `json:"value"`
	PointsAwarded   int               `json:"pointsAwarded"`
	UserEmail       string            `json:"userEmail"`
	SourceRequestID *string           `json:"sourceRequestId,omitempty"`
	Status          string            `json:"status"`
	OrderInfo       *OrderInfoRecord  `json:"orderInfo,omitempty"`
}

// OrderInfoRecord is the stored form of entity.OrderInfo.
type OrderInfoRecord struct {
	OrderID   string `json:"orderId"`
	OrderedAt string `json:"orderedAt"`
}

// ToInventoryDeviceDomain maps a stored device to the entity.
// Unknown types read as Other and an ordered flag without order info reads as available.
func ToInventoryDeviceDomain(rec *InventoryDeviceRecord) (*entity.InventoryDevice, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid device id %q", rec.ID)
	}

	deviceType := entity.DeviceType(rec.Type)
	if !deviceType.IsValid() {
		deviceType = entity.ParseDeviceType(rec.Type)
	}

	device := &entity.InventoryDevice{
		ID:            id,
		Type:          deviceType,
		Brand:         rec.Brand,
		Model:         rec.Model,
		Description:   rec.Description,
		Condition:     entity.Condition(rec.Condition),
		Specs:         maps.Clone(rec.Specs),
		ReceivedDate:  ParseTime(rec.ReceivedDate),
		Value:         rec.Value,
		PointsAwarded: rec.PointsAwarded,
		OwnerEmail:    rec.UserEmail,
		Status:        entity.DeviceAvailable,
	}

	if rec.SourceRequestID != nil {
		if sourceID, err := uuid.Parse(*rec.SourceRequestID); err == nil {
			device.SourceRequestID = &sourceID
		}
	}

	if entity.DeviceStatus(rec.Status) == entity.DeviceOrdered && rec.OrderInfo != nil {
		if orderID, err := uuid.Parse(rec.OrderInfo.OrderID); err == nil {
			device.Status = entity.DeviceOrdered
			device.OrderInfo = &entity.OrderInfo{
				OrderID:   orderID,
				OrderedAt: ParseTime(rec.OrderInfo.OrderedAt),
			}
		}
	}

	return device, nil
}

// FromInventoryDeviceDomain maps the entity to its stored record.
func FromInventoryDeviceDomain(device *entity.InventoryDevice) InventoryDeviceRecord {
	rec := InventoryDeviceRecord{
		ID:            device.ID.String(),
		Type:          string(device.Type),
		Brand:         device.Brand,
		Model:         device.Model,
		Description:   device.Description,
		Condition:     string(device.Condition),
		Specs:         maps.Clone(device.Specs),
		ReceivedDate:  FormatTime(device.ReceivedDate),
		Value:         device.Value,
		PointsAwarded: device.PointsAwarded,
		UserEmail:     device.OwnerEmail,
		Status:        string(device.Status),
	}
	if rec.Specs == nil {
		rec.Specs = map[string]string{}
	}
	if device.SourceRequestID != nil {
		s := device.SourceRequestID.String()
		rec.SourceRequestID = &s
	}
	if device.OrderInfo != nil {
		rec.OrderInfo = &OrderInfoRecord{
			OrderID:   device.OrderInfo.OrderID.String(),
			OrderedAt: FormatTime(device.OrderInfo.OrderedAt),
		}
	}

	return rec
}
