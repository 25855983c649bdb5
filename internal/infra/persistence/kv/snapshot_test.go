package kv_test

import (
	"context"
	"testing"
	"time"

	"recyclemart/internal/infra/persistence/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_ExportImportRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	source := kv.NewMemory(0)
	require.NoError(t, source.Apply(ctx, []kv.Mutation{
		kv.Put("users", `{"ana@example.com":{"role":"customer"}}`),
		kv.Put("userData_ana@example.com", `{"requests":[]}`),
		kv.Put("adminVouchers", `[]`),
	}))

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	snap, err := kv.Export(ctx, source, "", now)
	require.NoError(t, err)
	assert.Len(t, snap.Entries, 3)
	assert.Equal(t, now, snap.CreatedAt)
	assert.NotEmpty(t, snap.Checksum)
	require.NoError(t, snap.Verify())

	target := kv.NewMemory(0)
	require.NoError(t, target.Set(ctx, "recyclingOrders", `[]`))

	restored, err := kv.Import(ctx, target, snap, false)
	require.NoError(t, err)
	assert.Equal(t, 3, restored)

	value, ok, err := target.Get(ctx, "users")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"ana@example.com":{"role":"customer"}}`, value)

	// Without replace, keys missing from the snapshot survive.
	_, ok, err = target.Get(ctx, "recyclingOrders")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSnapshot_ImportReplaceRemovesStrayKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	source := kv.NewMemory(0)
	require.NoError(t, source.Set(ctx, "userData_a@x.io", `{}`))

	snap, err := kv.Export(ctx, source, "userData_", time.Now())
	require.NoError(t, err)

	target := kv.NewMemory(0)
	require.NoError(t, target.Apply(ctx, []kv.Mutation{
		kv.Put("userData_b@x.io", `{}`),
		kv.Put("users", `{}`),
	}))

	_, err = kv.Import(ctx, target, snap, true)
	require.NoError(t, err)

	keys, err := target.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"userData_a@x.io", "users"}, keys)
}

func TestSnapshot_VerifyDetectsTampering(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	source := kv.NewMemory(0)
	require.NoError(t, source.Set(ctx, "adminVouchers", `[{"value":100}]`))

	snap, err := kv.Export(ctx, source, "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(len("adminVouchers")+len(`[{"value":100}]`)), snap.Size())

	snap.Entries["adminVouchers"] = `[{"value":1}]`

	err = snap.Verify()
	require.Error(t, err)
	assert.ErrorIs(t, err, kv.ErrChecksumMismatch)
}
