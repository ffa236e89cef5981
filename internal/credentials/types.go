package credentials

import "errors"

// ErrEmptyToken is returned when a provider yields credentials without an access token.
var ErrEmptyToken = errors.New("access token is empty")

// Credentials represents the bearer credentials used to authenticate against the maze
type Credentials struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// Environment and storage keys
const (
	BearerTokenEnv   = "BEARER_TOKEN"
	CredsPathEnv     = "MAZE_CREDS_PATH"
	DefaultCredsDir  = ".maze"
	DefaultCredsFile = "credentials.json"
	KVNamespace      = "maze_requester_kv"
	KVCredentialsKey = "maze_bearer_credentials"
)
