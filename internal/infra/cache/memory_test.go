package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemory_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(10)

	_, err := c.Get(ctx, "q")
	require.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "q", "jawaban", time.Minute))
	got, err := c.Get(ctx, "q")
	require.NoError(t, err)
	require.Equal(t, "jawaban", got)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemory(10)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "q", "jawaban", time.Minute))
	now = now.Add(time.Minute)

	_, err := c.Get(ctx, "q")
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemory_EvictsSoonestExpiringWhenFull(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(2)

	require.NoError(t, c.Set(ctx, "short", "1", time.Minute))
	require.NoError(t, c.Set(ctx, "long", "2", time.Hour))
	require.NoError(t, c.Set(ctx, "new", "3", time.Hour))

	_, err := c.Get(ctx, "short")
	require.ErrorIs(t, err, ErrCacheMiss)
	got, err := c.Get(ctx, "long")
	require.NoError(t, err)
	require.Equal(t, "2", got)
	got, err = c.Get(ctx, "new")
	require.NoError(t, err)
	require.Equal(t, "3", got)
}

func TestMemory_OverwriteDoesNotEvict(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(1)

	require.NoError(t, c.Set(ctx, "q", "1", time.Hour))
	require.NoError(t, c.Set(ctx, "q", "2", time.Hour))

	got, err := c.Get(ctx, "q")
	require.NoError(t, err)
	require.Equal(t, "2", got)
}

func TestNop(t *testing.T) {
	var c Cache = Nop{}
	require.NoError(t, c.Set(context.Background(), "q", "a", time.Minute))
	_, err := c.Get(context.Background(), "q")
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestNewRedis_UnreachableServer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := NewRedis(ctx, RedisConfig{Addr: "127.0.0.1:1"})
	require.Error(t, err)
}
