package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parity/logging"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"Error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("trace")
	assert.ErrorIs(t, err, logging.ErrInvalidOption)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("solved", "strategy", "selfloop", "lifts", 10)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "solved", rec["msg"])
	assert.Equal(t, "selfloop", rec["strategy"])
	assert.EqualValues(t, 10, rec["lifts"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Writer: &buf})
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("timeout", "file", "a.pg")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "file=a.pg")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_BadFormat(t *testing.T) {
	_, err := logging.New(logging.Options{Format: "xml"})
	assert.ErrorIs(t, err, logging.ErrInvalidOption)
}

func TestContextCarriage(t *testing.T) {
	assert.Same(t, slog.Default(), logging.FromContext(context.Background()))

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := logging.WithLogger(context.Background(), logger)
	assert.Same(t, logger, logging.FromContext(ctx))
}
