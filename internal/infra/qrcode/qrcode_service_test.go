package qrcode

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePickupLabel(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://recyclemart.example")
	pickup := time.Date(2025, 7, 4, 9, 30, 0, 0, time.UTC)

	qrBytes, err := service.GeneratePickupLabel(uuid.New(), &pickup)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GeneratePickupLabel_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "")

			qrBytes, err := service.GeneratePickupLabel(uuid.New(), nil)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParsePickupLabel(t *testing.T) {
	service := NewQRCodeService(256, "M", "")
	orderID := uuid.New()

	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{
			name:    "valid",
			payload: mustJSON(t, PickupLabelData{OrderID: orderID.String(), Type: "pickup", PickupDate: "2025-07-04"}),
		},
		{
			name:    "invalid json",
			payload: "invalid json",
			wantErr: "failed to unmarshal QR code data",
		},
		{
			name:    "invalid type",
			payload: mustJSON(t, PickupLabelData{OrderID: orderID.String(), Type: "subscription"}),
			wantErr: "invalid QR code type",
		},
		{
			name:    "invalid uuid",
			payload: mustJSON(t, PickupLabelData{OrderID: "not-a-valid-uuid", Type: "pickup"}),
			wantErr: "failed to parse order ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsedID, err := service.ParsePickupLabel(tt.payload)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, orderID, parsedID)
		})
	}
}

func mustJSON(t *testing.T, data PickupLabelData) string {
	t.Helper()

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	return string(raw)
}
