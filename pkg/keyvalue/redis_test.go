package keyvalue_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadtrip/pkg/keyvalue"
)

func newTestRedisSlot(t *testing.T) *keyvalue.RedisSlot {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return keyvalue.NewRedisSlot(client, "test:session:user_id")
}

func TestRedisSlot_WriteReadClear(t *testing.T) {
	slot := newTestRedisSlot(t)
	ctx := context.Background()

	val, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, slot.Write(ctx, "u1"))
	val, err = slot.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", val)

	require.NoError(t, slot.Clear(ctx))
	val, err = slot.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestRedisSlot_ClearIsIdempotent(t *testing.T) {
	slot := newTestRedisSlot(t)
	ctx := context.Background()

	require.NoError(t, slot.Clear(ctx))
	require.NoError(t, slot.Clear(ctx))
}
