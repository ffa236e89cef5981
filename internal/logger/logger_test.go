package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriticalDoesNotExit(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)

	Critical(&l).Str("url", "http://maze.local/x").Msg("Request timed out")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "fatal", entry["level"])
	assert.Equal(t, "http://maze.local/x", entry["url"])
}

func TestFormatLevel(t *testing.T) {
	testCases := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{name: "debug", input: "debug", expected: colorize("DBG", colorYellow)},
		{name: "warn", input: "warn", expected: colorize("WRN", colorRed)},
		{name: "critical", input: "fatal", expected: colorize("CRT", colorRed)},
		{name: "unknown", input: "verbose", expected: colorize("VER", colorBold)},
		{name: "short", input: "x", expected: colorize("X", colorBold)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, formatLevel(tc.input))
		})
	}
}
