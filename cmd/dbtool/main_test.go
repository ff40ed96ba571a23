package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggingReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=warn\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	prev := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prev)
		os.Unsetenv("LOG_LEVEL")
	})

	setupLogging()
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
