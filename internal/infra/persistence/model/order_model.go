package model

import (
	"maps"

	"recyclemart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CoordinatesRecord is the stored form of a geocoded location.
type CoordinatesRecord struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CartItemRecord is the stored form of entity.CartItem inside "recyclingCart_<email>".
type CartItemRecord struct {
	DeviceID       string             `json:"deviceId"`
	ShippingMethod string             `json:"shippingMethod"`
	Location       string             `json:"location"`
	Coordinates    *CoordinatesRecord `json:"coordinates,omitempty"`
	AddedAt        string             `json:"addedAt"`
}

// OrderRecord is the stored form of entity.Order inside "recyclingOrders".
type OrderRecord struct {
	ID           string             `json:"id"`
	CompanyEmail string             `json:"companyEmail"`
	CreatedAt    string             `json:"createdAt"`
	Status       string             `json:"status"`
	Items        []OrderItemRecord  `json:"items"`
	PickupDate   *string            `json:"pickupDate"`
	Notes        string             `json:"notes"`
	Total        decimal.Decimal    `json:"total"`
	Events       []OrderEventRecord `json:"events"`
}

// OrderItemRecord is the stored snapshot of one ordered device.
type OrderItemRecord struct {
	DeviceID       string             `json:"deviceId"`
	ShippingMethod string             `json:"shippingMethod"`
	Location       string             `json:"location"`
	Coordinates    *CoordinatesRecord `json:"coordinates,omitempty"`
	DistanceKm     *float64           `json:"distanceKm,omitempty"`
	Type           string             `json:"type"`
	Brand          string             `json:"brand"`
	Model          string             `json:"model"`
	Condition      string             `json:"condition"`
	Specs          map[string]string  `json:"specs"`
	Value          decimal.Decimal    `json:"value"`
}

// OrderEventRecord is the stored form of entity.OrderEvent.
type OrderEventRecord struct {
	Type        string `json:"type"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func toPoint(rec *CoordinatesRecord) *orb.Point {
	if rec == nil {
		return nil
	}

	return &orb.Point{rec.Lng, rec.Lat}
}

func fromPoint(p *orb.Point) *CoordinatesRecord {
	if p == nil {
		return nil
	}

	return &CoordinatesRecord{Lat: p.Lat(), Lng: p.Lon()}
}

// ToCartItemDomain maps a stored cart item to the entity.
func ToCartItemDomain(rec *CartItemRecord) (*entity.CartItem, error) {
	id, err := uuid.Parse(rec.DeviceID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid cart device id %q", rec.DeviceID)
	}

	return &entity.CartItem{
		DeviceID:       id,
		ShippingMethod: entity.ShippingMethod(rec.ShippingMethod),
		Location:       rec.Location,
		Coordinates:    toPoint(rec.Coordinates),
		AddedAt:        ParseTime(rec.AddedAt),
	}, nil
}

// FromCartItemDomain maps the entity to its stored record.
func FromCartItemDomain(item *entity.CartItem) CartItemRecord {
	return CartItemRecord{
		DeviceID:       item.DeviceID.String(),
		ShippingMethod: string(item.ShippingMethod),
		Location:       item.Location,
		Coordinates:    fromPoint(item.Coordinates),
		AddedAt:        FormatTime(item.AddedAt),
	}
}

// ToOrderDomain maps a stored order to the entity.
func ToOrderDomain(rec *OrderRecord) (*entity.Order, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid order id %q", rec.ID)
	}

	status := entity.OrderStatus(rec.Status)
	if !status.IsValid() {
		status = entity.OrderProcessing
	}

	order := &entity.Order{
		ID:           id,
		CompanyEmail: rec.CompanyEmail,
		CreatedAt:    ParseTime(rec.CreatedAt),
		Status:       status,
		Items:        make([]entity.OrderItem, 0, len(rec.Items)),
		PickupDate:   parseTimePtr(rec.PickupDate),
		Notes:        rec.Notes,
		Total:        rec.Total,
		Events:       make([]entity.OrderEvent, 0, len(rec.Events)),
	}

	for i := range rec.Items {
		item := &rec.Items[i]
		deviceID, err := uuid.Parse(item.DeviceID)
		if err != nil {
			return nil, errors.Wrapf(err, "order %s: invalid item device id %q", rec.ID, item.DeviceID)
		}
		var distance *float64
		if item.DistanceKm != nil {
			d := *item.DistanceKm
			distance = &d
		}
		order.Items = append(order.Items, entity.OrderItem{
			DeviceID:       deviceID,
			ShippingMethod: entity.ShippingMethod(item.ShippingMethod),
			Location:       item.Location,
			Coordinates:    toPoint(item.Coordinates),
			DistanceKm:     distance,
			Type:           entity.DeviceType(item.Type),
			Brand:          item.Brand,
			Model:          item.Model,
			Condition:      entity.Condition(item.Condition),
			Specs:          maps.Clone(item.Specs),
			Value:          item.Value,
		})
	}

	for _, ev := range rec.Events {
		order.Events = append(order.Events, entity.OrderEvent{
			Type:        ev.Type,
			Date:        ParseTime(ev.Date),
			Description: ev.Description,
		})
	}

	return order, nil
}

// FromOrderDomain maps the entity to its stored record.
func FromOrderDomain(order *entity.Order) OrderRecord {
	rec := OrderRecord{
		ID:           order.ID.String(),
		CompanyEmail: order.CompanyEmail,
		CreatedAt:    FormatTime(order.CreatedAt),
		Status:       string(order.Status),
		Items:        make([]OrderItemRecord, 0, len(order.Items)),
		PickupDate:   formatTimePtr(order.PickupDate),
		Notes:        order.Notes,
		Total:        order.Total,
		Events:       make([]OrderEventRecord, 0, len(order.Events)),
	}

	for i := range order.Items {
		item := &order.Items[i]
		var distance *float64
		if item.DistanceKm != nil {
			d := *item.DistanceKm
			distance = &d
		}
		specs := maps.Clone(item.Specs)
		if specs == nil {
			specs = map[string]string{}
		}
		rec.Items = append(rec.Items, OrderItemRecord{
			DeviceID:       item.DeviceID.String(),
			ShippingMethod: string(item.ShippingMethod),
			Location:       item.Location,
			Coordinates:    fromPoint(item.Coordinates),
			DistanceKm:     distance,
			Type:           string(item.Type),
			Brand:          item.Brand,
			Model:          item.Model,
			Condition:      string(item.Condition),
			Specs:          specs,
			Value:          item.Value,
		})
	}

	for _, ev := range order.Events {
		rec.Events = append(rec.Events, OrderEventRecord{
			Type:        ev.Type,
			Date:        FormatTime(ev.Date),
			Description: ev.Description,
		})
	}

	return rec
}
