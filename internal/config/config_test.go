package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useFile(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boxful.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	SetConfigFile(path)
	t.Cleanup(func() { SetConfigFile("") })
}

func TestLoadConfigDefaults(t *testing.T) {
	useFile(t, "{}\n")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "sqlite", cfg.Session.Driver)
	assert.Equal(t, "data/session.db", cfg.Session.DSN)
	assert.Equal(t, "127.0.0.1:0", cfg.Report.Addr)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	useFile(t, `
api:
  base_url: https://api.boxful.test
  timeout: 3s
logging:
  level: debug
`)
	t.Setenv("BOXFUL_LOGGING_LEVEL", "warn")
	t.Setenv("BOXFUL_SESSION_DSN", "/tmp/s.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://api.boxful.test", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/tmp/s.db", cfg.Session.DSN)
}

func TestLoadConfigRejectsBadDriver(t *testing.T) {
	useFile(t, "session:\n  driver: redis\n")
	_, err := LoadConfig()
	require.Error(t, err)

	useFile(t, "session:\n  driver: postgres\n")
	_, err = LoadConfig()
	require.ErrorContains(t, err, "database.url")
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	SetConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	t.Cleanup(func() { SetConfigFile("") })

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestGet(t *testing.T) {
	t.Setenv("BOXFUL_TEST_KEY", "value")
	assert.Equal(t, "value", Get("BOXFUL_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", Get("BOXFUL_TEST_UNSET", "fallback"))
}
