package kv_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"recyclemart/internal/errors"
	"recyclemart/internal/infra/persistence/kv"
	mockKV "recyclemart/internal/mocks/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFallback_PassesThroughWhenHealthy(t *testing.T) {
	ctx := context.Background()
	primary := mockKV.NewMockStore(t)
	store := kv.NewFallback(primary, newDiscardLogger())

	primary.EXPECT().Apply(ctx, []kv.Mutation{kv.Put("users", "{}")}).Return(nil)
	primary.EXPECT().Get(ctx, "users").Return("{}", true, nil)

	require.NoError(t, store.Set(ctx, "users", "{}"))
	value, ok, err := store.Get(ctx, "users")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "{}", value)
	assert.False(t, store.Degraded())
}

func TestFallback_DegradesOnWriteFailure(t *testing.T) {
	ctx := context.Background()
	primary := mockKV.NewMockStore(t)
	store := kv.NewFallback(primary, newDiscardLogger())

	primary.EXPECT().
		Apply(ctx, mock.Anything).
		Return(errors.Wrap(kv.ErrQuotaExceeded, "need 6.0 MB of 5.0 MB")).
		Once()

	require.NoError(t, store.Set(ctx, "recyclingOrders", "[1]"))
	assert.True(t, store.Degraded())

	// Reads come from the overlay; the primary is not consulted for overlay keys.
	value, ok, err := store.Get(ctx, "recyclingOrders")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[1]", value)

	// Later writes skip the primary entirely.
	require.NoError(t, store.Remove(ctx, "recyclingOrders"))
	_, ok, err = store.Get(ctx, "recyclingOrders")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFallback_DegradesOnReadFailure(t *testing.T) {
	ctx := context.Background()
	primary := mockKV.NewMockStore(t)
	store := kv.NewFallback(primary, newDiscardLogger())

	primary.EXPECT().Get(ctx, "users").Return("", false, kv.ErrUnavailable)

	_, ok, err := store.Get(ctx, "users")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, store.Degraded())
}

func TestFallback_KeysMergeOverlay(t *testing.T) {
	ctx := context.Background()
	primary := mockKV.NewMockStore(t)
	store := kv.NewFallback(primary, newDiscardLogger())
	store.Degrade(ctx, "test", kv.ErrUnavailable)

	require.NoError(t, store.Set(ctx, "userData_c@x.io", "{}"))
	require.NoError(t, store.Remove(ctx, "userData_a@x.io"))

	primary.EXPECT().Keys(ctx, "userData_").Return([]string{"userData_a@x.io", "userData_b@x.io"}, nil)

	keys, err := store.Keys(ctx, "userData_")
	require.NoError(t, err)
	assert.Equal(t, []string{"userData_b@x.io", "userData_c@x.io"}, keys)
}
