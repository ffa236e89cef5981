package maze

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/dvcrn/maze-requester/internal/env"
	serverhttp "github.com/dvcrn/maze-requester/internal/http"
)

// Environment variables consulted by ConfigFromEnv
const (
	EnvBaseURL            = "MAZE_URL"
	EnvTimeout            = "MAZE_TIMEOUT"
	EnvInsecureSkipVerify = "MAZE_INSECURE_SKIP_VERIFY"
)

// DefaultTimeout bounds every request unless Config.Timeout is set.
const DefaultTimeout = serverhttp.DefaultTimeout

// Config holds everything a Requester needs besides its credentials.
type Config struct {
	// BaseURL is the service root; request paths are appended verbatim.
	BaseURL string

	// Timeout covers connect and read. Zero means DefaultTimeout.
	Timeout time.Duration

	// InsecureSkipVerify turns off TLS certificate verification.
	InsecureSkipVerify bool

	// HTTPClient overrides the transport built from Timeout and InsecureSkipVerify.
	HTTPClient serverhttp.HTTPClient

	// Logger defaults to the process logger.
	Logger *zerolog.Logger
}

type fileConfig struct {
	BaseURL            string `yaml:"base_url"`
	Timeout            string `yaml:"timeout"`
	InsecureSkipVerify *bool  `yaml:"insecure_skip_verify"`
}

// ConfigFromEnv builds a Config from MAZE_URL, MAZE_TIMEOUT and MAZE_INSECURE_SKIP_VERIFY.
func ConfigFromEnv() (Config, error) {
	cfg := Config{}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML config file. Environment variables override file values.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, &ConfigurationError{Key: path, Reason: fmt.Sprintf("is not valid YAML: %v", err)}
	}

	cfg := Config{BaseURL: fc.BaseURL}
	if fc.Timeout != "" {
		timeout, err := parseTimeout("timeout", fc.Timeout)
		if err != nil {
			return Config{}, err
		}
		cfg.Timeout = timeout
	}
	if fc.InsecureSkipVerify != nil {
		cfg.InsecureSkipVerify = *fc.InsecureSkipVerify
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if baseURL, ok := env.Get(EnvBaseURL); ok {
		c.BaseURL = baseURL
	}

	if raw, ok := env.Get(EnvTimeout); ok {
		timeout, err := parseTimeout(EnvTimeout, raw)
		if err != nil {
			return err
		}
		c.Timeout = timeout
	}

	if raw, ok := env.Get(EnvInsecureSkipVerify); ok {
		skip, err := strconv.ParseBool(raw)
		if err != nil {
			return &ConfigurationError{Key: EnvInsecureSkipVerify, Reason: fmt.Sprintf("is not a boolean: %q", raw)}
		}
		c.InsecureSkipVerify = skip
	}
	return nil
}

// parseTimeout accepts a Go duration ("2s") or a number of seconds ("5.0").
func parseTimeout(key, raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	d, err := time.ParseDuration(raw)
	if err != nil {
		secs, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return 0, &ConfigurationError{Key: key, Reason: fmt.Sprintf("is not a duration: %q", raw)}
		}
		d = time.Duration(secs * float64(time.Second))
	}
	if d <= 0 {
		return 0, &ConfigurationError{Key: key, Reason: fmt.Sprintf("must be positive, got %q", raw)}
	}
	return d, nil
}

func (c Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}
