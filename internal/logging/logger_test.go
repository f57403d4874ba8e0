package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Writer: &buf, Level: "info"})
	require.NotNil(t, log)

	log.Info().Msg("test message")
	assert.Contains(t, buf.String(), "test message")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Writer: &buf, Level: "info", Format: FormatJSON})

	log.Info().Str("region", "nyc1").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "nyc1", entry["region"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestNewDefaultWriter(t *testing.T) {
	// nil writer falls back to stderr
	require.NotNil(t, New(Options{Level: "info"}))
}

func TestSub(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Writer: &buf, Level: "debug", Format: FormatJSON})

	log.Sub("provision").Info().Msg("sub message")
	assert.Contains(t, buf.String(), "sub message")
	assert.Contains(t, buf.String(), `"subsystem":"provision"`)
}

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Writer: &buf, Level: "warn"})

	log.Debug().Msg("debug msg")
	log.Info().Msg("info msg")
	assert.Empty(t, buf.String(), "debug and info should be filtered at warn level")

	log.Warn().Msg("warn msg")
	assert.Contains(t, buf.String(), "warn msg")

	buf.Reset()
	log.Error().Msg("error msg")
	assert.Contains(t, buf.String(), "error msg")
}

func TestSilentLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Writer: &buf, Level: "silent"})

	log.Info().Msg("should not appear")
	log.Error().Msg("should not appear")
	assert.Empty(t, buf.String())
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error().Msg("discarded")
	log.Sub("x").Info().Msg("discarded")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"silent", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"INFO", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}
