//go:build js && wasm

package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/syumai/workers"

	"github.com/dvcrn/maze-requester/internal/credentials"
	"github.com/dvcrn/maze-requester/internal/logger"
	"github.com/dvcrn/maze-requester/internal/maze"
)

const routePrefix = "/maze"

var provider credentials.Provider

func init() {
	kvProvider, err := credentials.NewCloudflareKVProvider()
	if err != nil {
		logger.Get().Error().Err(err).Msg("Failed to create KV credentials provider, falling back to BEARER_TOKEN")
		provider = credentials.NewEnvProvider()
		return
	}
	provider = credentials.NewChainProvider(credentials.NewEnvProvider(), kvProvider)
}

// relayHandler serves GET /maze/<path> by calling the maze with the same path.
func relayHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	cfg, err := maze.ConfigFromEnv()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	requester, err := maze.NewRequester(cfg, provider, nil)
	if err != nil {
		logger.Get().Error().Err(err).Msg("Failed to create requester")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, routePrefix)
	if r.URL.RawQuery != "" {
		path += "?" + r.URL.RawQuery
	}

	result, err := requester.Get(path)
	if err != nil {
		status, body := maze.RelayStatus(err)
		http.Error(w, body, status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.Get().Error().Err(err).Msg("Failed to encode response")
	}
}

func main() {
	mux := http.NewServeMux()
	mux.HandleFunc(routePrefix+"/", relayHandler)
	workers.Serve(mux)
}
