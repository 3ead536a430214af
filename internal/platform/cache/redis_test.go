package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestNewPingsServer(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := New(context.Background(), mr.Addr())
	require.NoError(t, err)
	require.NoError(t, client.Close())

	addr := mr.Addr()
	mr.Close()
	_, err = New(context.Background(), addr)
	require.ErrorContains(t, err, "platform/cache: ping")
}

func TestRedisStorage(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStorage(client, "hris:")

	_, ok, err := store.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Set(ctx, "auth_token", "tok-1"))
	require.True(t, mr.Exists("hris:auth_token"))
	v, ok, err := store.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "tok-1", v)

	require.NoError(t, store.Set(ctx, "logout_reason", "session_timeout"))
	v, ok, err = store.Take(ctx, "logout_reason")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "session_timeout", v)
	require.False(t, mr.Exists("hris:logout_reason"))
	_, ok, err = store.Take(ctx, "logout_reason")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Delete(ctx, "auth_token", "refresh_token"))
	require.False(t, mr.Exists("hris:auth_token"))
	require.NoError(t, store.Delete(ctx))
}
