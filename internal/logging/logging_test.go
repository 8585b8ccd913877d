package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}

func TestSetLoggerReachesRenderer(t *testing.T) {
	l, err := New(&bytes.Buffer{}, slog.LevelDebug, "text")
	require.NoError(t, err)

	SetLogger(l)
	assert.Same(t, l, gg.Logger())

	SetLogger(nil)
	assert.NotSame(t, l, gg.Logger())
	assert.False(t, gg.Logger().Enabled(t.Context(), slog.LevelError))
}

func TestForTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, slog.LevelDebug, "json")
	require.NoError(t, err)

	SetLogger(l)
	t.Cleanup(func() { SetLogger(nil) })

	For("host").Debug("primitive added", "count", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "host", rec["component"])
	assert.Equal(t, "primitive added", rec["msg"])
	assert.EqualValues(t, 3, rec["count"])
}

func TestNewFormats(t *testing.T) {
	var buf bytes.Buffer

	l, err := New(&buf, slog.LevelWarn, "text")
	require.NoError(t, err)
	l.Info("dropped")
	l.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "msg=kept")

	_, err = New(&buf, slog.LevelInfo, "xml")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":  slog.LevelDebug,
		"INFO":   slog.LevelInfo,
		" warn ": slog.LevelWarn,
		"error":  slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
