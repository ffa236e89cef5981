//go:build !js || !wasm

package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTreatsEmptyAsUnset(t *testing.T) {
	t.Setenv("MAZE_ENV_TEST", "")

	_, ok := Get("MAZE_ENV_TEST")
	assert.False(t, ok)

	value, ok := Lookup("MAZE_ENV_TEST")
	assert.True(t, ok)
	assert.Equal(t, "", value)
}

func TestGetOrDefault(t *testing.T) {
	t.Setenv("MAZE_ENV_TEST", "set")
	assert.Equal(t, "set", GetOrDefault("MAZE_ENV_TEST", "fallback"))
	assert.Equal(t, "fallback", GetOrDefault("MAZE_ENV_TEST_MISSING_KEY", "fallback"))
}
