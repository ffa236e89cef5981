package maze

import (
	"net/http"
	"strings"
)

// Method is one of the HTTP verbs the requester dispatches.
type Method string

const (
	MethodGet  Method = http.MethodGet
	MethodPost Method = http.MethodPost
	MethodPut  Method = http.MethodPut
)

var supportedMethods = []Method{MethodGet, MethodPost, MethodPut}

// ParseMethod maps a case-insensitive verb name onto a supported Method.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	switch m {
	case MethodGet, MethodPost, MethodPut:
		return m, nil
	default:
		return "", &UnsupportedMethodError{Method: s}
	}
}

func methodNames() []string {
	names := make([]string, len(supportedMethods))
	for i, m := range supportedMethods {
		names[i] = string(m)
	}
	return names
}
