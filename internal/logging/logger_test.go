package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	assert.Equal(t, "warn", Level())
	assert.Equal(t, "warn", Level("", ""))
	assert.Equal(t, "debug", Level("", "debug", "info"))

	t.Setenv(EnvLogLevel, "trace")
	assert.Equal(t, "trace", Level(""))
	assert.Equal(t, "error", Level("error"))
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	t.Setenv(EnvJSONLog, "")
	var buf bytes.Buffer
	log := NewLogger("xorcrack", "info", &buf)

	log.Debug("hidden")
	log.Info("ranked key lengths", "count", 17)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "ranked key lengths")
	assert.Contains(t, out, "count=17")
	assert.True(t, log.IsInfo())
	assert.False(t, log.IsDebug())
}

func TestNewLoggerJSON(t *testing.T) {
	t.Setenv(EnvJSONLog, "1")
	var buf bytes.Buffer
	log := NewLogger("xorcrack", "debug", &buf)
	log.Debug("recovered key", "length", 3)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "recovered key", line["@message"])
	assert.Equal(t, "xorcrack", line["@module"])
	assert.EqualValues(t, 3, line["length"])
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	assert.Equal(t, hclog.NoLevel, hclog.LevelFromString("nonsense"))
	log := NewLogger("xorcrack", "nonsense", &bytes.Buffer{})
	assert.True(t, log.IsInfo())
}
