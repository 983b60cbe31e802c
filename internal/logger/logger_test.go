package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewJSONWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "info", JSON: true, Output: &buf})

	log.Info("MenuLoader", "menus loaded", map[string]interface{}{"count": 3})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "MenuLoader", entry["component"])
	assert.Equal(t, "menus loaded", entry["message"])
	assert.EqualValues(t, 3, entry["count"])
}

func TestNewJSONError(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{JSON: true, Output: &buf})

	log.Error("MenuLoader", errors.New("boom"), nil)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry["error"])
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "warn", JSON: true, Output: &buf})

	log.Debug("test", "hidden", nil)
	log.Info("test", "hidden", nil)
	assert.Zero(t, buf.Len())

	log.Warning("test", "shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestNoOpLoggerSatisfiesInterface(t *testing.T) {
	var l Logger = NoOpLogger{}
	l.Info("c", "m", nil)
	l.Error("c", errors.New("e"), nil)
}
