package kv_test

import (
	"context"
	"testing"

	"recyclemart/internal/infra/persistence/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetSetRemove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemory(0)

	_, ok, err := store.Get(ctx, "users")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "users", `{"a@x.io":{}}`))
	value, ok, err := store.Get(ctx, "users")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"a@x.io":{}}`, value)

	require.NoError(t, store.Remove(ctx, "users"))
	require.NoError(t, store.Remove(ctx, "users"))
	_, ok, err = store.Get(ctx, "users")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, store.Used())
}

func TestMemory_QuotaExceeded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemory(24)

	require.NoError(t, store.Set(ctx, "a", "0123456789"))

	err := store.Set(ctx, "b", "0123456789abcdef")
	require.Error(t, err)
	assert.ErrorIs(t, err, kv.ErrQuotaExceeded)

	_, ok, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.False(t, ok, "rejected write must not be stored")

	// Shrinking an existing key always fits.
	require.NoError(t, store.Set(ctx, "a", "0"))
	assert.Equal(t, int64(2), store.Used())
}

func TestMemory_ApplyIsAllOrNothing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemory(16)
	require.NoError(t, store.Set(ctx, "keep", "v"))

	err := store.Apply(ctx, []kv.Mutation{
		kv.Put("x", "1"),
		kv.Delete("keep"),
		kv.Put("y", "0123456789abcdef"),
	})
	require.ErrorIs(t, err, kv.ErrQuotaExceeded)

	_, ok, _ := store.Get(ctx, "x")
	assert.False(t, ok)
	value, ok, _ := store.Get(ctx, "keep")
	assert.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestMemory_ApplyLastWriteWins(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemory(0)

	require.NoError(t, store.Apply(ctx, []kv.Mutation{
		kv.Put("k", "first"),
		kv.Put("k", "second"),
		kv.Put("gone", "x"),
		kv.Delete("gone"),
	}))

	value, ok, _ := store.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "second", value)
	_, ok, _ = store.Get(ctx, "gone")
	assert.False(t, ok)
	assert.Equal(t, int64(len("k")+len("second")), store.Used())
}

func TestMemory_KeysByPrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemory(0)
	for _, k := range []string{"userData_b@x.io", "users", "userData_a@x.io", "recyclingOrders"} {
		require.NoError(t, store.Set(ctx, k, "{}"))
	}

	keys, err := store.Keys(ctx, "userData_")
	require.NoError(t, err)
	assert.Equal(t, []string{"userData_a@x.io", "userData_b@x.io"}, keys)

	all, err := store.Keys(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
