//go:build !js || !wasm

package env

import "os"

// Get retrieves an environment variable. Empty values are reported as unset.
func Get(key string) (string, bool) {
	value := os.Getenv(key)
	if value == "" {
		return "", false
	}
	return value, true
}

// Lookup retrieves an environment variable, reporting whether it is set at
// all. Unlike Get, an empty value counts as present.
func Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// GetOrDefault retrieves an environment variable with a default value
func GetOrDefault(key, defaultValue string) string {
	if value, ok := Get(key); ok {
		return value
	}
	return defaultValue
}
