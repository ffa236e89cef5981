package credentials

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dvcrn/maze-requester/internal/logger"
)

// ChainProvider asks each provider in order and returns the first non-empty token
type ChainProvider struct {
	providers []Provider
}

// NewChainProvider creates a provider that tries providers in order
func NewChainProvider(providers ...Provider) *ChainProvider {
	return &ChainProvider{providers: providers}
}

// GetCredentials returns the first usable credentials in the chain
func (c *ChainProvider) GetCredentials() (*Credentials, error) {
	var errs []error
	for _, p := range c.providers {
		creds, err := p.GetCredentials()
		if err != nil {
			logger.Get().Debug().Err(err).Str("provider", p.Name()).Msg("Credentials provider skipped")
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}
		if creds == nil || creds.AccessToken == "" {
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), ErrEmptyToken))
			continue
		}
		return creds, nil
	}
	if len(errs) == 0 {
		return nil, fmt.Errorf("no credentials providers configured")
	}
	return nil, errors.Join(errs...)
}

// Name returns the provider name
func (c *ChainProvider) Name() string {
	names := make([]string, 0, len(c.providers))
	for _, p := range c.providers {
		names = append(names, p.Name())
	}
	return "ChainProvider(" + strings.Join(names, ", ") + ")"
}
