package kv_test

import (
	"context"
	"testing"

	"recyclemart/internal/infra/persistence/kv"
	mockKV "recyclemart/internal/mocks/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaged_ReadsThroughWriteSet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	base := kv.NewMemory(0)
	require.NoError(t, base.Set(ctx, "users", "base"))
	require.NoError(t, base.Set(ctx, "recyclingDevices", "[]"))

	staged := kv.NewStaged(base)
	require.NoError(t, staged.Set(ctx, "users", "staged"))
	require.NoError(t, staged.Remove(ctx, "recyclingDevices"))

	value, ok, err := staged.Get(ctx, "users")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "staged", value)

	_, ok, err = staged.Get(ctx, "recyclingDevices")
	require.NoError(t, err)
	assert.False(t, ok)

	// Base untouched until commit.
	value, _, _ = base.Get(ctx, "users")
	assert.Equal(t, "base", value)

	require.NoError(t, staged.Commit(ctx))

	value, _, _ = base.Get(ctx, "users")
	assert.Equal(t, "staged", value)
	_, ok, _ = base.Get(ctx, "recyclingDevices")
	assert.False(t, ok)
}

func TestStaged_CommitAppliesOneBatchInFirstWriteOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	base := mockKV.NewMockStore(t)
	staged := kv.NewStaged(base)

	require.NoError(t, staged.Set(ctx, "recyclingDevices", "v1"))
	require.NoError(t, staged.Set(ctx, "recyclingOrders", "o1"))
	require.NoError(t, staged.Set(ctx, "recyclingDevices", "v2"))
	require.NoError(t, staged.Remove(ctx, "recyclingCart_c@x.io"))

	base.EXPECT().Apply(ctx, []kv.Mutation{
		kv.Put("recyclingDevices", "v2"),
		kv.Put("recyclingOrders", "o1"),
		kv.Delete("recyclingCart_c@x.io"),
	}).Return(nil).Once()

	require.NoError(t, staged.Commit(ctx))
	// Second commit is a no-op.
	require.NoError(t, staged.Commit(ctx))
}

func TestStaged_EmptyCommitSkipsBase(t *testing.T) {
	t.Parallel()

	base := mockKV.NewMockStore(t)
	staged := kv.NewStaged(base)

	require.NoError(t, staged.Commit(context.Background()))
}

func TestStaged_KeysIncludeStagedWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	base := kv.NewMemory(0)
	require.NoError(t, base.Set(ctx, "userData_a@x.io", "{}"))

	staged := kv.NewStaged(base)
	require.NoError(t, staged.Set(ctx, "userData_b@x.io", "{}"))
	require.NoError(t, staged.Remove(ctx, "userData_a@x.io"))

	keys, err := staged.Keys(ctx, "userData_")
	require.NoError(t, err)
	assert.Equal(t, []string{"userData_b@x.io"}, keys)
}
