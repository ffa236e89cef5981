package credentials

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dvcrn/maze-requester/internal/env"
	"github.com/dvcrn/maze-requester/internal/logger"
)

// FileProvider implements Store using a JSON credentials file
type FileProvider struct {
	filePath string
}

// NewFileProvider creates a new file-based credentials provider
func NewFileProvider() (*FileProvider, error) {
	provider := &FileProvider{}

	if err := provider.determineFilePath(); err != nil {
		return nil, err
	}

	return provider, nil
}

// NewFileProviderAt creates a file-based provider for an explicit path
func NewFileProviderAt(path string) *FileProvider {
	return &FileProvider{filePath: path}
}

// determineFilePath sets the file path based on environment variables or defaults
func (f *FileProvider) determineFilePath() error {
	// 1. Check for file path in environment variable
	if credsPath, ok := env.Get(CredsPathEnv); ok {
		f.filePath = credsPath
		return nil
	}

	// 2. Use default path
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	f.filePath = filepath.Join(homeDir, DefaultCredsDir, DefaultCredsFile)
	return nil
}

// GetCredentials retrieves credentials from the file
func (f *FileProvider) GetCredentials() (*Credentials, error) {
	data, err := os.ReadFile(f.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("credentials file %s not found; run `maze-requester login` or set %s", f.filePath, BearerTokenEnv)
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	creds := &Credentials{}
	if err := json.Unmarshal(data, creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials from file: %w", err)
	}
	return creds, nil
}

// SaveCredentials writes credentials to the file, creating its directory if needed
func (f *FileProvider) SaveCredentials(creds *Credentials) error {
	dir := filepath.Dir(f.filePath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	if err := os.WriteFile(f.filePath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials to %s: %w", f.filePath, err)
	}

	logger.Get().Info().Str("path", f.filePath).Msg("Saved credentials")
	return nil
}

// Path returns the credentials file location
func (f *FileProvider) Path() string {
	return f.filePath
}

// Name returns the provider name
func (f *FileProvider) Name() string {
	return fmt.Sprintf("FileProvider(%s)", f.filePath)
}
