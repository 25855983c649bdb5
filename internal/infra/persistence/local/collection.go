// Package local implements the domain repositories on top of the key-value store.
// Every collection is one JSON document under a fixed key; each operation is a read-modify-write of it.
package local

import (
	"context"
	"encoding/json"
	"log/slog"

	domainerrors "recyclemart/internal/domain/errors"
	"recyclemart/internal/infra/persistence/kv"
)

// Storage keys.
const (
	KeyUsers          = "users"
	KeyUserDataPrefix = "userData_"
	KeyVouchers       = "adminVouchers"
	KeyMarketProducts = "customerMarketProducts"
	KeyCartPrefix     = "recyclingCart_"
	KeyOrders         = "recyclingOrders"
	KeyDevices        = "recyclingDevices"
	KeyIsLoggedIn     = "isLoggedIn"
	KeyUserEmail      = "userEmail"
	KeyUserRole       = "userRole"
)

// UserDataKey is the key of one user's requests and notifications.
func UserDataKey(email string) string {
	return KeyUserDataPrefix + email
}

// CartKey is the key of one company's cart.
func CartKey(email string) string {
	return KeyCartPrefix + email
}

// collection reads and writes one JSON document.
type collection struct {
	store  kv.Store
	logger *slog.Logger
}

// load decodes the document under key into dst. A missing key leaves dst untouched.
// Malformed JSON is logged and treated as missing, so callers always get a usable default.
func (c collection) load(ctx context.Context, key string, dst any) error {
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return domainerrors.NewStorageExecuteError(err, "read "+key)
	}
	if !ok || raw == "" {
		return nil
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		c.logger.WarnContext(ctx, "Discarding malformed stored collection",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return nil
	}

	return nil
}

func (c collection) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return domainerrors.NewStorageExecuteError(err, "encode "+key)
	}

	if err := c.store.Set(ctx, key, string(raw)); err != nil {
		return domainerrors.NewStorageExecuteError(err, "write "+key)
	}

	return nil
}

func (c collection) remove(ctx context.Context, key string) error {
	if err := c.store.Remove(ctx, key); err != nil {
		return domainerrors.NewStorageExecuteError(err, "remove "+key)
	}

	return nil
}

func (c collection) warnSkipped(ctx context.Context, key string, err error) {
	c.logger.WarnContext(ctx, "Skipping malformed stored record",
		slog.String("key", key),
		slog.Any("error", err),
	)
}
