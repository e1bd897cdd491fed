package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout())
	assert.Equal(t, 50, cfg.PageSizes.Orders)
	assert.Equal(t, 100, cfg.PageSizes.Users)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waiter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_url: http://api.restaurant.local
log_level: debug
request_timeout_seconds: 5
page_sizes:
  orders: 25
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://api.restaurant.local", cfg.APIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout())
	assert.Equal(t, 25, cfg.PageSizes.Orders)
	// untouched sections keep their defaults
	assert.Equal(t, 30, cfg.PageSizes.Browse)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waiter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: http://from-file\n"), 0o600))

	t.Setenv("WAITER_API_URL", "http://from-env")
	t.Setenv("WAITER_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env", cfg.APIURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadRejectsEmptyAPIURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waiter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`api_url: ""`), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
