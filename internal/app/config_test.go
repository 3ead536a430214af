package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/odyssey-erp/hris-access/testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/api", cfg.APIURL)
	assert.Empty(t, cfg.StorageDriver)
	assert.Empty(t, cfg.StoragePath)
	assert.Equal(t, 30*time.Minute, cfg.IdleTimeout)
	assert.Equal(t, "auth_token", cfg.SessionKeys().Token)
	assert.Equal(t, "last_activity", cfg.SessionKeys().LastActivity)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("HRIS_STORAGE=redis\nHRIS_KEY_TOKEN=portal_token\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("HRIS_STORAGE")
		_ = os.Unsetenv("HRIS_KEY_TOKEN")
	})

	cfg, err := LoadConfig(file, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, StorageRedis, cfg.StorageDriver)
	assert.Equal(t, "portal_token", cfg.SessionKeys().Token)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	t.Setenv("HRIS_STORAGE", "sqlite")
	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "StorageDriver")
}

func TestValidateServer(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	cfg.JWTSecret = "short"
	assert.Error(t, cfg.ValidateServer())

	cfg.JWTSecret = "a-secret-of-sufficient-length"
	assert.NoError(t, cfg.ValidateServer())
}
