package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into an empty dir so a developer's config.toml can't leak in
func chdir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "tiendapos-terminal", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "http://localhost:3001", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, int64(10<<20), cfg.API.MaxResponseSize)
	assert.Equal(t, "session.json", cfg.Session.File)
	assert.Equal(t, 200, cfg.Board.PageSize)
	assert.Equal(t, "week", cfg.Board.DateFilter)
	assert.Equal(t, 30*time.Second, cfg.Board.CacheTTL)
	assert.Equal(t, "receipts", cfg.Receipt.OutputDir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	chdir(t)
	content := `
[api]
base_url = "http://backend.local:4000"
timeout = "5s"

[board]
page_size = 50
date_filter = "month"

[log]
level = "debug"
format = "json"
`
	require.NoError(t, os.WriteFile("config.toml", []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://backend.local:4000", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 50, cfg.Board.PageSize)
	assert.Equal(t, "month", cfg.Board.DateFilter)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestEnvOverridesFile(t *testing.T) {
	chdir(t)
	require.NoError(t, os.WriteFile("config.toml", []byte("[api]\nbase_url = \"http://from-file:1\"\n"), 0644))
	t.Setenv("POS_API_BASE_URL", "http://from-env:2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:2", cfg.API.BaseURL)
}

func TestValidation(t *testing.T) {
	chdir(t)

	t.Run("rejects a bad base URL", func(t *testing.T) {
		t.Setenv("POS_API_BASE_URL", "::://nope")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects an unknown date filter", func(t *testing.T) {
		t.Setenv("POS_BOARD_DATE_FILTER", "decade")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "date_filter")
	})

	t.Run("requires https in production", func(t *testing.T) {
		t.Setenv("POS_APP_ENV", "production")
		t.Setenv("POS_API_BASE_URL", "http://backend.local:4000")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "https")
	})

	t.Run("accepts https in production", func(t *testing.T) {
		t.Setenv("POS_APP_ENV", "production")
		t.Setenv("POS_API_BASE_URL", "https://backend.example.com")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestConfigFromHomeDirIgnoredWhenAbsent(t *testing.T) {
	chdir(t)
	t.Setenv("HOME", filepath.Join(t.TempDir(), "nohome"))

	_, err := Load()
	assert.NoError(t, err)
}
