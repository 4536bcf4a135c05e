package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("trace")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestNew_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Config{Level: "warn"})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", "k", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "k=1")
}

func TestNew_JSONWithService(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Config{Level: "debug", Format: "json", Service: "gridstar"})
	require.NoError(t, err)

	log.Debug("expand", "step", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "expand", rec["msg"])
	assert.Equal(t, "gridstar", rec["service"])
	assert.EqualValues(t, 3, rec["step"])
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Config{Format: "xml"})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDiscard(t *testing.T) {
	assert.False(t, Discard().Enabled(context.Background(), slog.LevelError))
}
