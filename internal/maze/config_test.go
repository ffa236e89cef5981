package maze

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearMazeEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvBaseURL, EnvTimeout, EnvInsecureSkipVerify} {
		t.Setenv(key, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearMazeEnv(t)
	t.Setenv(EnvBaseURL, "https://maze.example")
	t.Setenv(EnvTimeout, "2.5")
	t.Setenv(EnvInsecureSkipVerify, "true")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://maze.example", cfg.BaseURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.Timeout)
	assert.True(t, cfg.InsecureSkipVerify)
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearMazeEnv(t)

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Empty(t, cfg.BaseURL)
	assert.False(t, cfg.InsecureSkipVerify, "TLS verification must be on unless opted out")
	assert.Equal(t, DefaultTimeout, cfg.timeout())
	assert.Equal(t, 5*time.Second, DefaultTimeout)
}

func TestConfigFromEnv_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "timeout not a number", key: EnvTimeout, value: "soon"},
		{name: "timeout zero", key: EnvTimeout, value: "0"},
		{name: "timeout negative", key: EnvTimeout, value: "-3s"},
		{name: "insecure not a bool", key: EnvInsecureSkipVerify, value: "sometimes"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearMazeEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := ConfigFromEnv()
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.key, cfgErr.Key)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearMazeEnv(t)
	path := filepath.Join(t.TempDir(), "maze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: https://file.example
timeout: 750ms
insecure_skip_verify: true
`), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://file.example", cfg.BaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.Timeout)
	assert.True(t, cfg.InsecureSkipVerify)

	t.Setenv(EnvBaseURL, "https://env.example")
	t.Setenv(EnvInsecureSkipVerify, "false")

	cfg, err = LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example", cfg.BaseURL)
	assert.False(t, cfg.InsecureSkipVerify)
	assert.Equal(t, 750*time.Millisecond, cfg.Timeout)
}

func TestLoadConfigFile_Errors(t *testing.T) {
	clearMazeEnv(t)
	dir := t.TempDir()

	_, err := LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("base_url: [unterminated"), 0o600))
	_, err = LoadConfigFile(bad)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "invalid maze configuration")

	badTimeout := filepath.Join(dir, "timeout.yaml")
	require.NoError(t, os.WriteFile(badTimeout, []byte("timeout: forever"), 0o600))
	_, err = LoadConfigFile(badTimeout)
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "timeout", cfgErr.Key)
}
