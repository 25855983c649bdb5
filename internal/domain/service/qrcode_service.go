package service

import (
	"time"

	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePickupLabel generates a PNG QR code carrying the order id and pickup date
	GeneratePickupLabel(orderID uuid.UUID, pickupDate *time.Time) ([]byte, error)

	// ParsePickupLabel parses QR code payload data and returns the order id
	ParsePickupLabel(qrData string) (uuid.UUID, error)
}
