package credentials

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvProvider(t *testing.T) {
	t.Setenv(BearerTokenEnv, "env-token")

	creds, err := NewEnvProvider().GetCredentials()
	require.NoError(t, err)
	assert.Equal(t, "env-token", creds.AccessToken)
}

func TestEnvProvider_Missing(t *testing.T) {
	t.Setenv(BearerTokenEnv, "")

	_, err := NewEnvProvider().GetCredentials()
	require.Error(t, err)
	assert.Contains(t, err.Error(), BearerTokenEnv)
}

func TestFileProvider_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	provider := NewFileProviderAt(path)

	require.NoError(t, provider.SaveCredentials(&Credentials{AccessToken: "file-token", TokenType: "Bearer"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	creds, err := provider.GetCredentials()
	require.NoError(t, err)
	assert.Equal(t, "file-token", creds.AccessToken)
}

func TestFileProvider_PathFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	t.Setenv(CredsPathEnv, path)

	provider, err := NewFileProvider()
	require.NoError(t, err)
	assert.Equal(t, path, provider.Path())

	_, err = provider.GetCredentials()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFileProvider_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileProviderAt(path).GetCredentials()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

type failingProvider struct{ err error }

func (f failingProvider) GetCredentials() (*Credentials, error) { return nil, f.err }
func (f failingProvider) Name() string { return "failing" }

func TestChainProvider(t *testing.T) {
	boom := errors.New("boom")

	t.Run("first usable wins", func(t *testing.T) {
		chain := NewChainProvider(failingProvider{err: boom}, NewStaticProvider(""), NewStaticProvider("second"), NewStaticProvider("third"))
		creds, err := chain.GetCredentials()
		require.NoError(t, err)
		assert.Equal(t, "second", creds.AccessToken)
	})

	t.Run("all fail", func(t *testing.T) {
		chain := NewChainProvider(failingProvider{err: boom}, NewStaticProvider(""))
		_, err := chain.GetCredentials()
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, err, ErrEmptyToken)
	})

	t.Run("empty chain", func(t *testing.T) {
		_, err := NewChainProvider().GetCredentials()
		assert.Error(t, err)
	})
}

func TestBearerToken(t *testing.T) {
	token, err := BearerToken(NewStaticProvider("abc"))
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = BearerToken(NewStaticProvider(""))
	assert.ErrorIs(t, err, ErrEmptyToken)

	boom := errors.New("vault sealed")
	_, err = BearerToken(failingProvider{err: boom})
	assert.ErrorIs(t, err, boom)

	_, err = BearerToken(nil)
	assert.Error(t, err)
}

func TestStaticProvider(t *testing.T) {
	provider := NewStaticProvider("fixed")
	assert.Equal(t, "StaticProvider", provider.Name())

	creds, err := provider.GetCredentials()
	require.NoError(t, err)
	assert.Equal(t, &Credentials{AccessToken: "fixed", TokenType: "Bearer"}, creds)
}
