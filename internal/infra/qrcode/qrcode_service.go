package qrcode

import (
	"encoding/json"
	"strings"
	"time"

	"recyclemart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	labelTypePickup = "pickup"
	defaultSize     = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// PickupLabelData represents the payload encoded in an order pickup label
type PickupLabelData struct {
	OrderID    string `json:"order_id"`
	Type       string `json:"type"`
	PickupDate string `json:"pickup_date,omitempty"`
	URL        string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance.
// baseURL, when set, adds a link to the order page to every label.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GeneratePickupLabel generates a PNG QR code carrying the order id and pickup date
func (s *qrcodeService) GeneratePickupLabel(orderID uuid.UUID, pickupDate *time.Time) ([]byte, error) {
	data := PickupLabelData{
		OrderID: orderID.String(),
		Type:    labelTypePickup,
	}
	if pickupDate != nil {
		data.PickupDate = pickupDate.UTC().Format(time.DateOnly)
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/orders/" + data.OrderID
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePickupLabel parses a scanned label payload and returns the order id
func (s *qrcodeService) ParsePickupLabel(qrData string) (uuid.UUID, error) {
	var data PickupLabelData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != labelTypePickup {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse order ID")
	}

	return orderID, nil
}
