package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/srgjo27/seat_reservation/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetAll(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SESSION_ID", "SESSION_TIME", "LOG_LEVEL", "NO_COLOR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetAll(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, config.Config{SessionID: "concert", SessionTime: "19:00", LogLevel: "info"}, cfg)
}

func TestLoad_EnvFile(t *testing.T) {
	unsetAll(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SESSION_ID=opera\nSESSION_TIME=20:30\nNO_COLOR=1\n"), 0o600))
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "opera", cfg.SessionID)
	assert.Equal(t, "20:30", cfg.SessionTime)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Plain)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	unsetAll(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SESSION_ID=opera\n"), 0o600))
	t.Setenv("SESSION_ID", "ballet")

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "ballet", cfg.SessionID)
}
