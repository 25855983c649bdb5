package local

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"recyclemart/internal/domain/entity"
	"recyclemart/internal/infra/persistence/kv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *kv.Memory {
	t.Helper()

	return kv.NewMemory(0)
}

func newTestUser(email string, role entity.Role, points int) *entity.User {
	return &entity.User{
		Email:        email,
		PasswordHash: "hash",
		Role:         role,
		Profile:      entity.Profile{FirstName: "Test", Points: points},
		CreatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func newTestDevice(deviceType entity.DeviceType, brand string, value string) *entity.InventoryDevice {
	return &entity.InventoryDevice{
		ID:           uuid.New(),
		Type:         deviceType,
		Brand:        brand,
		Model:        "M1",
		Condition:    entity.ConditionGood,
		Specs:        map[string]string{"storage": "128GB"},
		ReceivedDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Value:        decimal.RequireFromString(value),
		OwnerEmail:   "owner@x.io",
		Status:       entity.DeviceAvailable,
	}
}
