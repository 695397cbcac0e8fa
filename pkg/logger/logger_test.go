package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_KeyValues(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf).With("component", "feed")

	log.Info("Fetched rate feed", "window", "recent", "days", 64, "error", errors.New("none"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "Fetched rate feed", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "feed", entry["component"])
	assert.Equal(t, "recent", entry["window"])
	assert.Equal(t, 64.0, entry["days"])
	assert.Equal(t, "none", entry["error"])
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.Debug("hidden")
	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown", "dangling")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "(MISSING)", entry["dangling"])
}

func TestLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New("loud", &buf)

	log.Debug("hidden")
	assert.Zero(t, buf.Len())
	log.Info("shown")
	assert.NotZero(t, buf.Len())
}
