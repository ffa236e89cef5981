package credentials

import (
	"fmt"

	"github.com/dvcrn/maze-requester/internal/env"
)

// EnvProvider reads the bearer token from the BEARER_TOKEN environment variable
type EnvProvider struct {
	key string
}

// NewEnvProvider creates a provider reading BEARER_TOKEN
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{key: BearerTokenEnv}
}

// GetCredentials returns the token found in the environment
func (e *EnvProvider) GetCredentials() (*Credentials, error) {
	token, ok := env.Get(e.key)
	if !ok {
		return nil, fmt.Errorf("%s is not set", e.key)
	}
	return &Credentials{AccessToken: token, TokenType: "Bearer"}, nil
}

// Name returns the provider name
func (e *EnvProvider) Name() string {
	return fmt.Sprintf("EnvProvider(%s)", e.key)
}
