package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HTTP_ADDR", "LOG_LEVEL", "CATALOG_SOURCE", "INBOX_STORE", "SHOP_LOCALE", "SESSION_TTL", "DB_HOST", "DB_NAME", "DB_PORT"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, SourceStatic, cfg.CatalogSource)
	assert.Equal(t, SourceMemory, cfg.InboxStore)
	assert.Equal(t, "ru", cfg.Locale)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.NeedsPostgres())
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_ADDR=:9090\nSESSION_TTL=15m\nSHOP_LOCALE=en\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("HTTP_ADDR")
		os.Unsetenv("SESSION_TTL")
		os.Unsetenv("SHOP_LOCALE")
	})
	// godotenv does not override variables that are already set, even empty
	os.Unsetenv("HTTP_ADDR")
	os.Unsetenv("SESSION_TTL")
	os.Unsetenv("SHOP_LOCALE")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "en", cfg.Locale)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "none.env")

	t.Setenv("SESSION_TTL", "soon")
	_, err := Load(missing)
	assert.Error(t, err)

	t.Setenv("SESSION_TTL", "")
	t.Setenv("CATALOG_SOURCE", "mongo")
	_, err = Load(missing)
	assert.Error(t, err)

	t.Setenv("CATALOG_SOURCE", SourcePostgres)
	_, err = Load(missing)
	assert.ErrorContains(t, err, "postgres requested")
}
