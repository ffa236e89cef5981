package credentials

// StaticProvider always returns the same token
type StaticProvider struct {
	token string
}

// NewStaticProvider creates a provider for a fixed token
func NewStaticProvider(token string) *StaticProvider {
	return &StaticProvider{token: token}
}

// GetCredentials returns the fixed token
func (s *StaticProvider) GetCredentials() (*Credentials, error) {
	return &Credentials{AccessToken: s.token, TokenType: "Bearer"}, nil
}

// Name returns the provider name
func (s *StaticProvider) Name() string {
	return "StaticProvider"
}
