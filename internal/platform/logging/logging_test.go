package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/srgjo27/seat_reservation/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := logging.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = logging.ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("shown", "seat", "A1")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "seat=A1")
}
