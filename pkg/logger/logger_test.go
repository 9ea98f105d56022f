package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(t *testing.T, level string) (*Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log, err := New(Config{Level: level, Format: "json", Writer: buf})
	require.NoError(t, err)
	return log, buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestNew_InvalidOutput(t *testing.T) {
	_, err := New(Config{Level: "info", Output: "syslog"})
	assert.Error(t, err)
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { MustNew(Config{Level: "loud"}) })
	assert.NotPanics(t, func() { MustNew(DefaultConfig()) })
}

func TestLogger_LevelFiltering(t *testing.T) {
	log, buf := newBufferLogger(t, "warn")

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown", "field", "Weight")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "Weight", entries[0]["field"])
}

func TestLogger_WithAndContext(t *testing.T) {
	log, buf := newBufferLogger(t, "debug")

	ctx := context.WithValue(context.Background(), SessionIDKey, "abc-123")
	log.With("component", "session").WithContext(ctx).Info("quoted", "cost", "$0.80")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "session", entries[0]["component"])
	assert.Equal(t, "abc-123", entries[0]["session_id"])
	assert.Equal(t, "$0.80", entries[0]["cost"])
}

func TestLogger_WithDoesNotAlias(t *testing.T) {
	log, buf := newBufferLogger(t, "info")

	base := log.With("a", 1)
	first := base.With("b", 2)
	second := base.With("c", 3)
	first.Info("first")
	second.Info("second")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0], "b")
	assert.NotContains(t, entries[1], "b")
	assert.Contains(t, entries[1], "c")
}

func TestLogger_Named(t *testing.T) {
	log, buf := newBufferLogger(t, "info")

	log.Named("shipcalc").Info("hello")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shipcalc", entries[0]["logger"])
}
