package credentials

import "fmt"

// Provider defines the interface for resolving bearer credentials
type Provider interface {
	// GetCredentials retrieves the current credentials
	GetCredentials() (*Credentials, error)

	// Name returns the name of the provider for logging
	Name() string
}

// Store is implemented by providers that can persist credentials
type Store interface {
	Provider

	// SaveCredentials persists the credentials
	SaveCredentials(creds *Credentials) error
}

// BearerToken resolves a non-empty access token from p.
func BearerToken(p Provider) (string, error) {
	if p == nil {
		return "", fmt.Errorf("no credentials provider configured")
	}
	creds, err := p.GetCredentials()
	if err != nil {
		return "", fmt.Errorf("unable to get credentials from %s: %w", p.Name(), err)
	}
	if creds == nil || creds.AccessToken == "" {
		return "", fmt.Errorf("%s: %w", p.Name(), ErrEmptyToken)
	}
	return creds.AccessToken, nil
}
