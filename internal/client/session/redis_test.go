package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/integrasalud/affiliate-client/internal/common"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_SaveLoadClear(t *testing.T) {
	mr, client := newTestRedis(t)
	s := NewRedisStore(client, 0)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	ctx := context.Background()

	e, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, e)

	require.NoError(t, s.Save(ctx, []byte(`[{"dni":"1"}]`)))
	assert.Equal(t, `[{"dni":"1"}]`, mr.HGet(common.SessionKey, "data"))

	e, err = s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, []byte(`[{"dni":"1"}]`), e.Data)
	assert.True(t, fixed.Equal(e.SavedAt))

	require.NoError(t, s.Clear(ctx))
	assert.False(t, mr.Exists(common.SessionKey))
}

func TestRedisStore_TTLExpiresSession(t *testing.T) {
	mr, client := newTestRedis(t)
	s := NewRedisStore(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []byte("x")))
	assert.Equal(t, time.Minute, mr.TTL(common.SessionKey))

	mr.FastForward(2 * time.Minute)

	e, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestRedisStore_ServerDown(t *testing.T) {
	mr, client := newTestRedis(t)
	s := NewRedisStore(client, 0)
	mr.Close()

	ctx := context.Background()
	require.Error(t, s.Save(ctx, []byte("x")))
	_, err := s.Load(ctx)
	require.Error(t, err)
	require.Error(t, s.Clear(ctx))
}
