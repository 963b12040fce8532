package events_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/events"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := events.NewLogger(events.WarnLevel, "text", &buf)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := events.NewLogger(events.InfoLevel, "json", &buf)

	logger.WithField("path", "/tmp/vault.json").Info("Vault saved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Vault saved", entry["msg"])
	assert.Equal(t, "/tmp/vault.json", entry["path"])
	assert.NotEmpty(t, entry["time"])
}

func TestLogger_RedactsSecretFields(t *testing.T) {
	var buf bytes.Buffer
	logger := events.NewLogger(events.InfoLevel, "json", &buf)

	logger.WithFields(map[string]any{
		"api_key": "abcdefgh",
		"host":    "localhost",
	}).Info("Configured")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ab****gh", entry["api_key"])
	assert.Equal(t, "localhost", entry["host"])
}

func TestLogger_WithFieldDoesNotAffectParent(t *testing.T) {
	var buf bytes.Buffer
	logger := events.NewLogger(events.InfoLevel, "text", &buf)

	child := logger.WithField("component", "vault_store")
	child.Info("child message")
	logger.Info("parent message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "component=vault_store")
	assert.NotContains(t, lines[1], "component=vault_store")
}

func TestLogger_WithError(t *testing.T) {
	var buf bytes.Buffer
	logger := events.NewLogger(events.InfoLevel, "text", &buf)

	logger.WithError(assert.AnError).Error("Operation failed")

	assert.Contains(t, buf.String(), assert.AnError.Error())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, events.DebugLevel, events.ParseLevel("debug"))
	assert.Equal(t, events.WarnLevel, events.ParseLevel("WARN"))
	assert.Equal(t, events.ErrorLevel, events.ParseLevel("error"))
	assert.Equal(t, events.InfoLevel, events.ParseLevel("anything-else"))
}

func TestDiscard(t *testing.T) {
	// Must not panic or write anywhere.
	logger := events.Discard()
	logger.WithField("k", "v").Error("dropped")
}
