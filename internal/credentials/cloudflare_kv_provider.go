//go:build js && wasm

package credentials

import (
	"encoding/json"
	"fmt"

	"github.com/dvcrn/maze-requester/internal/logger"

	"github.com/syumai/workers/cloudflare/kv"
)

// CloudflareKVProvider implements Store using Cloudflare KV storage
type CloudflareKVProvider struct {
	kvStore *kv.Namespace
}

// NewCloudflareKVProvider creates a new Cloudflare KV-based credentials provider
func NewCloudflareKVProvider() (*CloudflareKVProvider, error) {
	// The binding name is configured in wrangler.toml
	kvStore, err := kv.NewNamespace(KVNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize KV namespace: %w", err)
	}

	return &CloudflareKVProvider{kvStore: kvStore}, nil
}

// GetCredentials retrieves credentials from Cloudflare KV
func (c *CloudflareKVProvider) GetCredentials() (*Credentials, error) {
	credsJSON, err := c.kvStore.GetString(KVCredentialsKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials from KV: %w", err)
	}

	if credsJSON == "" {
		return nil, fmt.Errorf("no credentials found in KV storage")
	}

	var creds Credentials
	if err := json.Unmarshal([]byte(credsJSON), &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials JSON: %w", err)
	}

	return &creds, nil
}

// SaveCredentials saves credentials to Cloudflare KV
func (c *CloudflareKVProvider) SaveCredentials(creds *Credentials) error {
	credsJSON, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	if err := c.kvStore.PutString(KVCredentialsKey, string(credsJSON), nil); err != nil {
		return fmt.Errorf("failed to store credentials in KV: %w", err)
	}

	logger.Get().Info().Msg("Saved credentials to Cloudflare KV")
	return nil
}

// Name returns the provider name
func (c *CloudflareKVProvider) Name() string {
	return "CloudflareKVProvider"
}
