package localstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStorage(t *testing.T, path string) *Storage {
	t.Helper()
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStorage(t *testing.T) {
	ctx := context.Background()
	s := openTestStorage(t, filepath.Join(t.TempDir(), "nested", "session.db"))

	_, ok, err := s.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(ctx, "auth_token", "tok-1"))
	require.NoError(t, s.Set(ctx, "auth_token", "tok-2"))
	v, ok, err := s.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "tok-2", v)

	require.NoError(t, s.Set(ctx, "logout_reason", "session_timeout"))
	v, ok, err = s.Take(ctx, "logout_reason")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "session_timeout", v)
	_, ok, err = s.Take(ctx, "logout_reason")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Delete(ctx, "auth_token", "missing"))
	_, ok, err = s.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, s.Delete(ctx))
}

func TestStorageSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "auth_user", `{"username":"admin"}`))
	require.NoError(t, first.Close())

	second := openTestStorage(t, path)
	v, ok, err := second.Get(ctx, "auth_user")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"username":"admin"}`, v)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("")
	require.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path, err := DefaultPath()
	require.NoError(t, err)
	require.Equal(t, "session.db", filepath.Base(path))
	require.Equal(t, "hris", filepath.Base(filepath.Dir(path)))
}
